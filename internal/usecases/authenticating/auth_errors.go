package authenticating

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tipos de erros de autenticação personalizados
var (
	// ErrUnauthenticated indica que a API Laravel não reconhece a sessão do navegador
	ErrUnauthenticated = errors.New("sessão não autenticada")
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
	ErrSessionMismatch = errors.New("token emitido para outra sessão")
	ErrMissingSecret   = errors.New("AUTH_SECRET não configurado")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsTokenError indica que o cookie de sessão deve ser descartado e a sessão sondada de novo
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrSessionMismatch)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
