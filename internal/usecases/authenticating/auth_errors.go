package authenticating

import (
	"errors"

	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
)

var (
	ErrMissingToken = errors.New("token ausente")
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrNoSecret     = errors.New("segredo de autenticação não configurado")
)

// AuthError carrega o código da API que o middleware devolve ao painel
type AuthError struct {
	Err    error
	Code   string
	Reason string
}

func NewAuthError(err error, code string, reason string) *AuthError {
	return &AuthError{Err: err, Code: code, Reason: reason}
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " (" + e.Reason + ")"
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// CodeOf devolve o código da API para qualquer erro de validação; sem AuthError o token é tratado como inválido
func CodeOf(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return apiErrors.ErrInvalidToken
}
