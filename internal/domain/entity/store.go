package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store es un punto de venta físico. La identidad de negocio es el par
// (Name, Neighborhood): dos tiendas pueden llamarse igual solo en barrios
// distintos. Name y Neighborhood se persisten ya canonicalizados.
type Store struct {
	ID           int64
	Name         string // canónico: mayúsculas, espacios colapsados
	Address      string
	Phone        string
	Neighborhood string // canónico: Título por palabra
	StoreTypeID  int64
	RouteID      *int64 // nil = tienda huérfana (sin ruta de reparto)
	ManagerID    *int64 // nil = sin tendero asignado
	ImageURL     string
	Latitude     *decimal.Decimal
	Longitude    *decimal.Decimal
	OpeningTime  string
	ClosingTime  string
	City         string
	State        string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StoreType clasifica la tienda (tienda de barrio, supermercado, panadería...).
type StoreType struct {
	ID   int64
	Name string
}

// StoreImage foto asociada a una tienda.
type StoreImage struct {
	ID         int64
	StoreID    int64
	ImageURL   string
	PublicID   string // identificador del asset en el CDN
	IsPrimary  bool
	UploadedBy *int64
	CreatedAt  time.Time
}
