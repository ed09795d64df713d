package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go_vocab_srs/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxBodyBytes はリクエストボディの上限です。
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のフィールドや複数のJSON値を含むボディは不正な入力として扱います。
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
		case errors.As(err, &maxErr):
			return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが大きすぎます。", "", model.ErrInvalidInput)
		default:
			return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		}
	}
	if decoder.More() {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディには1つのJSONオブジェクトだけを含めてください。", "", model.ErrInvalidInput)
	}
	return nil
}

// DecodeAndValidate はボディをデコードしたうえで Validator で検証します。
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	return ValidateStruct(dst)
}

// ValidateStruct は構造体を検証し、失敗した場合は翻訳済みメッセージを持つ AppError を返します。
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationErrorResponse(verrs)
	}
	return model.NewAppError("VALIDATION_ERROR", "入力値の検証に失敗しました。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
}

// PathUUID は URL パスパラメータ name を UUID として解釈します。
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_ID", fmt.Sprintf("%sの形式が正しくありません。", name), name, model.ErrInvalidInput)
	}
	return id, nil
}

// QueryUUID はクエリパラメータ name を UUID として解釈します。未指定なら nil を返します。
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY", fmt.Sprintf("%sの形式が正しくありません。", name), name, model.ErrInvalidInput)
	}
	return &id, nil
}

// QueryInt はクエリパラメータ name を整数として解釈します。未指定なら nil を返します。
// 負の値は不正な入力です。
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, model.NewAppError("INVALID_QUERY", fmt.Sprintf("%sは0以上の整数で指定してください。", name), name, model.ErrInvalidInput)
	}
	return &n, nil
}
