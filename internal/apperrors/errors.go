// Package apperrors はアプリケーション共通のエラー分類と HTTP への変換を提供します。
package apperrors

import (
	"errors"
	"net/http"
)

// エラー分類。errors.Is で判定します。
var (
	ErrValidation      = errors.New("validation failure")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrUnavailable     = errors.New("unavailable")
)

// Error は利用者に返すメッセージと原因エラーを保持します。
type Error struct {
	Kind    error
	Message string
	Err     error
}

// New は原因を持たないエラーを作成します。
func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap は原因エラーを包んだエラーを作成します。
func Wrap(kind error, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap は分類と原因の両方を errors.Is / errors.As から辿れるようにします。
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Status はエラー分類に対応する HTTP ステータスを返します。
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDuplicateKey):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code はレスポンスの code フィールドに使う識別子を返します。
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "VALIDATION_FAILURE"
	case errors.Is(err, ErrDuplicateKey):
		return "DUPLICATE_KEY"
	case errors.Is(err, ErrUnauthenticated):
		return "UNAUTHENTICATED"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}
