package entity

import "time"

// Estados válidos para User.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema. El rol determina sus permisos.
type User struct {
	ID           int64
	Name         string
	Email        string // único a nivel global
	Phone        string // puede venir compuesto "countryCode-number"
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	RoleID       int64
	Status       string // active, inactive
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ComposePhone arma el teléfono como "countryCode-phone" cuando hay indicativo.
func ComposePhone(countryCode, phone string) string {
	if countryCode != "" {
		return countryCode + "-" + phone
	}
	return phone
}
