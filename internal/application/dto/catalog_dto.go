package dto

import "time"

// RouteRequest entrada para crear/actualizar una ruta de reparto.
type RouteRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RouteResponse salida de una ruta.
type RouteResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StoreTypeRequest entrada para tipos de tienda.
type StoreTypeRequest struct {
	Name string `json:"name"`
}

// MeasurementUnitRequest entrada para unidades de medida.
type MeasurementUnitRequest struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// MeasurementUnitResponse salida de una unidad de medida.
type MeasurementUnitResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// PaymentMethodRequest entrada para medios de pago.
type PaymentMethodRequest struct {
	Name string `json:"name"`
}

// PaymentMethodResponse salida de un medio de pago.
type PaymentMethodResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompanyRequest entrada para crear/actualizar una empresa.
type CompanyRequest struct {
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	NIT       string    `json:"nit"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierRequest entrada para proveedores.
type SupplierRequest struct {
	Name        string `json:"name"`
	NIT         string `json:"nit"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	NIT         string    `json:"nit"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
