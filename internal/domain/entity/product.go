package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto terminado de la panificadora.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Recipe receta de producción de un producto.
type Recipe struct {
	ID        int64
	ProductID int64
	Name      string
	Yield     int // unidades producidas por lote
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeItem insumo y cantidad que consume una receta.
type RecipeItem struct {
	ID                int64
	RecipeID          int64
	InventorySupplyID int64
	Quantity          decimal.Decimal // en gr/ml/und del insumo
}
