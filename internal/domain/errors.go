package domain

import (
	"errors"
	"fmt"
)

// Kind классифицирует доменные ошибки для дальнейшего маппинга в HTTP-статусы
type Kind int

const (
	KindInternal Kind = iota
	KindLimitExceeded
	KindNotFound
	KindUnauthorized
	KindConflict
	KindBadRequest
)

// Error несет вид ошибки и детали для ответа клиенту:
// человекочитаемый statement и параметры, на которых запрос упал
type Error struct {
	Kind      Kind
	Statement string
	Params    []any
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Statement, e.Err)
	}
	return e.Statement
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, statement string, params ...any) *Error {
	return &Error{Kind: kind, Statement: statement, Params: params}
}

func WrapError(kind Kind, err error, statement string, params ...any) *Error {
	return &Error{Kind: kind, Statement: statement, Params: params, Err: err}
}

// KindOf возвращает вид доменной ошибки, KindInternal для всех остальных
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}
