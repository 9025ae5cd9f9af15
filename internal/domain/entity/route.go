package entity

import "time"

// Route ruta de reparto a la que se asignan tiendas.
type Route struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
