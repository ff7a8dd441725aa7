package errors

import (
	"errors"
	"fmt"
)

// Severity indica cómo debe notificarse un error al usuario.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Code identifica la categoría del error. El despacho se hace por este
// tag y no por jerarquías de tipos.
type Code string

const (
	CodeConfig         Code = "config"
	CodeGit            Code = "git"
	CodeAIProvider     Code = "ai_provider"
	CodeVCSProvider    Code = "vcs_provider"
	CodeSummarization  Code = "summarization"
	CodeInvalidRequest Code = "invalid_request"
)

// AppError es el error de aplicación con severidad explícita.
type AppError struct {
	Code     Code
	Severity Severity
	Message  string
	Err      error
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

// New crea un AppError con severidad error.
func New(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Severity: SeverityError, Message: message, Err: err}
}

// NewWarning crea un AppError con severidad warning.
func NewWarning(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Severity: SeverityWarning, Message: message, Err: err}
}

// SeverityOf retorna la severidad de un error cualquiera. Los errores que
// no son AppError se tratan como SeverityError.
func SeverityOf(err error) Severity {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Severity
	}
	return SeverityError
}

// CodeOf retorna el código de un error cualquiera, o cadena vacía si no aplica.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
