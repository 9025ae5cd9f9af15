package entity

// Role agrupa un conjunto de permisos bajo un nombre ("SELLER", "shopKeeper"...).
type Role struct {
	ID   int64
	Name string
}

// Permission es una capacidad verificable ("view-supplies-stock", "manage-stores").
// Solo los permisos activos cuentan para autorización.
type Permission struct {
	ID          int64
	Name        string
	Code        string
	Description string
	Active      bool
}
