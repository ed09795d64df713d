// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrTenantNotFound = errors.New("tenant not found or invalid")
	ErrConflict       = errors.New("resource conflict") // 重複・同時更新の競合
	ErrRateLimited    = errors.New("rate limit exceeded")
)

// AppError はクライアントに返すエラー情報と、原因となったエラーをまとめたものです。
// HTTP ステータスは Err (センチネルエラー) から決まります。
type AppError struct {
	Code    string
	Message string
	Field   string
	Err     error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Field:   field,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail はレスポンス用の ErrorDetail を返します。
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{
		Code:    e.Code,
		Message: e.Message,
		Field:   e.Field,
	}
}

// ErrorDetail はエラーレスポンスの中身です。
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse は {"error": {...}} 形式のエラーレスポンスです。
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
