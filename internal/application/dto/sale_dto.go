package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemPayload renglón de venta en entrada. El precio unitario se toma del
// producto persistido, no del cliente.
type SaleItemPayload struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateSaleRequest entrada de POST /sales.
type CreateSaleRequest struct {
	StoreID         int64             `json:"store_id"`
	PaymentMethodID int64             `json:"payment_method_id"`
	Items           []SaleItemPayload `json:"items"`
}

// SaleItemResponse renglón de venta en salida.
type SaleItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con renglones y total.
type SaleResponse struct {
	ID              int64              `json:"id"`
	Reference       string             `json:"reference"`
	StoreID         int64              `json:"store_id"`
	UserID          int64              `json:"user_id"`
	PaymentMethodID int64              `json:"payment_method_id"`
	Total           decimal.Decimal    `json:"total"`
	SaleDate        time.Time          `json:"sale_date"`
	Items           []SaleItemResponse `json:"items"`
}
