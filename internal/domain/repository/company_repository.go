package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para Company.
type CompanyRepository interface {
	Create(c *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	Update(c *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	Delete(id int64) error
}

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(s *entity.SupplierCompany) error
	GetByID(id int64) (*entity.SupplierCompany, error)
	Update(s *entity.SupplierCompany) error
	List(limit, offset int) ([]*entity.SupplierCompany, error)
	Delete(id int64) error
}
