package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod medio de pago de una venta.
type PaymentMethod struct {
	ID   int64
	Name string
}

// Sale venta registrada contra una tienda.
type Sale struct {
	ID              int64
	Reference       string // uuid asignado al crear, para conciliación
	StoreID         int64
	UserID          int64 // vendedor que registró la venta
	PaymentMethodID int64
	Total           decimal.Decimal
	SaleDate        time.Time
	CreatedAt       time.Time
}

// SaleItem renglón de una venta.
type SaleItem struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
