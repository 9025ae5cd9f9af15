package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear un producto.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RecipeItemPayload renglón de receta en entrada.
type RecipeItemPayload struct {
	InventorySupplyID int64           `json:"inventory_supply_id"`
	Quantity          decimal.Decimal `json:"quantity"`
}

// RecipeRequest entrada para crear una receta con sus renglones.
type RecipeRequest struct {
	ProductID int64               `json:"product_id"`
	Name      string              `json:"name"`
	Yield     int                 `json:"yield"`
	Items     []RecipeItemPayload `json:"items"`
}

// RecipeItemResponse renglón de receta en salida.
type RecipeItemResponse struct {
	ID                int64           `json:"id"`
	InventorySupplyID int64           `json:"inventory_supply_id"`
	Quantity          decimal.Decimal `json:"quantity"`
}

// RecipeResponse receta con renglones.
type RecipeResponse struct {
	ID        int64                `json:"id"`
	ProductID int64                `json:"product_id"`
	Name      string               `json:"name"`
	Yield     int                  `json:"yield"`
	Items     []RecipeItemResponse `json:"items"`
	CreatedAt time.Time            `json:"created_at"`
}
