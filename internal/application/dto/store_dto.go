package dto

import "github.com/shopspring/decimal"

// StorePayload datos de la tienda al crear. name, address, store_type_id y
// neighborhood son obligatorios; el resto es opcional.
type StorePayload struct {
	Name         string           `json:"name"`
	Address      string           `json:"address"`
	Phone        string           `json:"phone"`
	Neighborhood string           `json:"neighborhood"`
	StoreTypeID  int64            `json:"store_type_id"`
	RouteID      *int64           `json:"route_id"`
	ImageURL     string           `json:"image_url"`
	Latitude     *decimal.Decimal `json:"latitude"`
	Longitude    *decimal.Decimal `json:"longitude"`
	OpeningTime  string           `json:"opening_time"`
	ClosingTime  string           `json:"closing_time"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Country      string           `json:"country"`
}

// ManagerPayload datos del tendero inline al crear/actualizar una tienda.
// Password vacío usa la contraseña de respaldo configurada; status vacío
// queda "inactive".
type ManagerPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
	Password    string `json:"password"`
	Status      string `json:"status"`
}

// CreateStoreRequest cuerpo de POST /stores: tienda con tendero opcional.
type CreateStoreRequest struct {
	Store StorePayload    `json:"store"`
	User  *ManagerPayload `json:"user"`
}

// UpdateStorePayload actualización de tienda. Los obligatorios viajan planos;
// los opcionales usan punteros (nil = conservar). RouteID es tri-estado:
// ausente conserva, null explícito desasigna la ruta, valor reasigna.
type UpdateStorePayload struct {
	Name         string           `json:"name"`
	Address      string           `json:"address"`
	Neighborhood string           `json:"neighborhood"`
	StoreTypeID  int64            `json:"store_type_id"`
	Phone        *string          `json:"phone"`
	RouteID      OptionalID       `json:"route_id"`
	ImageURL     *string          `json:"image_url"`
	Latitude     *decimal.Decimal `json:"latitude"`
	Longitude    *decimal.Decimal `json:"longitude"`
	OpeningTime  *string          `json:"opening_time"`
	ClosingTime  *string          `json:"closing_time"`
	City         *string          `json:"city"`
	State        *string          `json:"state"`
	Country      *string          `json:"country"`
}

// UpdateStoreRequest cuerpo de PUT /stores/:id (claves heredadas del cliente móvil).
type UpdateStoreRequest struct {
	Store UpdateStorePayload `json:"newStore"`
	User  *ManagerPayload    `json:"newUser"`
}

// AssignRouteRequest cuerpo de PUT /stores/:id/route.
type AssignRouteRequest struct {
	RouteID *int64 `json:"route_id"`
}

// StoreTypeRef resumen del tipo de tienda en respuestas.
type StoreTypeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StoreImageResponse imagen asociada a la tienda.
type StoreImageResponse struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	PublicID  string `json:"public_id"`
	IsPrimary bool   `json:"is_primary"`
}

// StoreResponse tienda con sus relaciones; nunca incluye credenciales.
type StoreResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Address      string               `json:"address"`
	Phone        string               `json:"phone"`
	Neighborhood string               `json:"neighborhood"`
	RouteID      *int64               `json:"route_id"`
	ImageURL     string               `json:"image_url"`
	Latitude     *decimal.Decimal     `json:"latitude"`
	Longitude    *decimal.Decimal     `json:"longitude"`
	OpeningTime  string               `json:"opening_time"`
	ClosingTime  string               `json:"closing_time"`
	City         string               `json:"city"`
	State        string               `json:"state"`
	Country      string               `json:"country"`
	StoreType    StoreTypeRef         `json:"store_type"`
	Manager      *ManagerSummary      `json:"manager"`
	Images       []StoreImageResponse `json:"images,omitempty"`
}
