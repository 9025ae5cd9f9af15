package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrStoreNotFound      = errors.New("tienda no encontrada")
	ErrRoleNotFound       = errors.New("el rol proporcionado no existe")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrStoreAlreadyExists = errors.New("esta tienda ya existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidPassword    = errors.New("contraseña incorrecta")
	ErrDuplicate          = errors.New("recurso duplicado")
)
