package apperror

import (
	"errors"
	"net/http"
)

// Kind identifica a categoria de um erro da aplicação
type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindPersistence  Kind = "persistence"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
)

// Error é o erro tipado que atravessa as camadas de serviço
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation cria um erro de entrada inválida
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound cria um erro de registro inexistente
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Persistence cria um erro de banco de dados preservando a causa
func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// Unauthorized cria um erro de autenticação
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden cria um erro de permissão
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// As extrai o *Error de uma cadeia de erros
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf retorna a categoria do erro; erros desconhecidos são tratados como persistência
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindPersistence
}

// Is verifica se o erro pertence à categoria informada
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// HTTPStatus mapeia a categoria do erro para o status HTTP correspondente
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
