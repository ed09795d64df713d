package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":        "名前",
	"email":       "メールアドレス",
	"description": "説明",
	"deck_id":     "デッキID",
	"front":       "表面",
	"back":        "裏面",
	"reading":     "読み",
	"example":     "例文",
	"tags":        "タグ",
	"rating":      "評価",
}

// translateFieldName は jsonタグ名を日本語名に変換します。tags[0] のような要素名は親の名前を使います。
func translateFieldName(field string) string {
	base, _, _ := strings.Cut(field, "[")
	if translated, ok := fieldNameTranslations[base]; ok {
		return translated
	}
	return field
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// withParam が true のタグはパラメータ ({1}) もメッセージに埋め込む
	registerTranslation := func(tag, msg string, withParam bool) {
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			fieldName := translateFieldName(fe.Field())
			var t string
			if withParam {
				t, _ = ut.T(tag, fieldName, fe.Param())
			} else {
				t, _ = ut.T(tag, fieldName)
			}
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}

	registerTranslation("required", "{0}は必須項目です。", false)
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。", false)
	registerTranslation("min", "{0}は{1}文字以上で入力してください。", true)
	registerTranslation("max", "{0}は{1}以下で入力してください。", true)
}
