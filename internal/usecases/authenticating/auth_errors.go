package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación del dashboard
var (
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrUserDisabled          = errors.New("usuario desactivado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrInsufficientPrivilege = errors.New("privilegios insuficientes")
	ErrUserAlreadyExists     = errors.New("usuario ya registrado")
	ErrMissingRequiredData   = errors.New("datos obligatorios ausentes")
)

// AuthError es un error con contexto adicional de autenticación
type AuthError struct {
	Err     error
	Code    string // Código de error para la API
	UserID  int    // ID del usuario involucrado (cuando aplica)
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica si el error está relacionado con credenciales
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
