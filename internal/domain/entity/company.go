package entity

import "time"

// Company empresa de la panificadora (razón social propia o sede).
type Company struct {
	ID        int64
	Name      string
	NIT       string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupplierCompany proveedor de insumos.
type SupplierCompany struct {
	ID          int64
	Name        string
	NIT         string
	ContactName string
	Phone       string
	Email       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
