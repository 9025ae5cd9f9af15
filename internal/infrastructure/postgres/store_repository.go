package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, name, address, phone, neighborhood, store_type_id, route_id, manager_id,
	image_url, latitude, longitude, opening_time, closing_time, city, state, country, created_at, updated_at`

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una nueva tienda y asigna store.ID. La identidad de negocio
// (name, neighborhood) tiene constraint único: violarlo devuelve
// domain.ErrStoreAlreadyExists.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (name, address, phone, neighborhood, store_type_id, route_id, manager_id,
			image_url, latitude, longitude, opening_time, closing_time, city, state, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		store.Name, store.Address, store.Phone, store.Neighborhood, store.StoreTypeID,
		store.RouteID, store.ManagerID, store.ImageURL, store.Latitude, store.Longitude,
		store.OpeningTime, store.ClosingTime, store.City, store.State, store.Country,
		store.CreatedAt, store.UpdatedAt,
	).Scan(&store.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStoreAlreadyExists
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id int64) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get store by id")
}

// FindByNameAndNeighborhood busca por el par canónico de identidad.
// Los argumentos deben llegar ya canonicalizados.
func (r *StoreRepo) FindByNameAndNeighborhood(name, neighborhood string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE name = $1 AND neighborhood = $2 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name, neighborhood), "find store by identity")
}

// Update actualiza una tienda completa.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, address = $3, phone = $4, neighborhood = $5, store_type_id = $6,
			route_id = $7, manager_id = $8, image_url = $9, latitude = $10, longitude = $11,
			opening_time = $12, closing_time = $13, city = $14, state = $15, country = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.Address, store.Phone, store.Neighborhood, store.StoreTypeID,
		store.RouteID, store.ManagerID, store.ImageURL, store.Latitude, store.Longitude,
		store.OpeningTime, store.ClosingTime, store.City, store.State, store.Country, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStoreAlreadyExists
		}
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *StoreRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

// detailQuery trae la tienda con su tipo y su tendero en un solo viaje.
// Las imágenes se cargan aparte (relación 1:N).
const detailQuery = `
	SELECT s.id, s.name, s.address, s.phone, s.neighborhood, s.store_type_id, s.route_id, s.manager_id,
		s.image_url, s.latitude, s.longitude, s.opening_time, s.closing_time, s.city, s.state, s.country,
		s.created_at, s.updated_at,
		st.id, st.name,
		u.id, u.name, u.email, u.phone, u.role_id, u.status, u.last_login, u.created_at, u.updated_at
	FROM stores s
	JOIN store_types st ON st.id = s.store_type_id
	LEFT JOIN users u ON u.id = s.manager_id`

// GetDetail devuelve la tienda con store_type, manager e imágenes.
func (r *StoreRepo) GetDetail(id int64) (*repository.StoreDetail, error) {
	row := r.q.QueryRow(context.Background(), detailQuery+` WHERE s.id = $1`, id)
	detail, err := scanStoreDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store detail: %w", err)
	}
	if err := r.attachImages(detail); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListByRoute lista las tiendas de una ruta, con detalle.
func (r *StoreRepo) ListByRoute(routeID int64) ([]*repository.StoreDetail, error) {
	return r.listDetails(detailQuery+` WHERE s.route_id = $1 ORDER BY s.name`, routeID)
}

// ListOrphans devuelve las tiendas sin ruta asignada.
func (r *StoreRepo) ListOrphans() ([]*repository.StoreDetail, error) {
	return r.listDetails(detailQuery + ` WHERE s.route_id IS NULL ORDER BY s.name`)
}

func (r *StoreRepo) listDetails(query string, args ...any) ([]*repository.StoreDetail, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*repository.StoreDetail
	for rows.Next() {
		detail, err := scanStoreDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan store detail: %w", err)
		}
		list = append(list, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, d := range list {
		if err := r.attachImages(d); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *StoreRepo) attachImages(d *repository.StoreDetail) error {
	query := `
		SELECT id, store_id, image_url, public_id, is_primary, uploaded_by, created_at
		FROM store_images WHERE store_id = $1 ORDER BY is_primary DESC, id`
	rows, err := r.q.Query(context.Background(), query, d.Store.ID)
	if err != nil {
		return fmt.Errorf("list store images: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var img entity.StoreImage
		if err := rows.Scan(&img.ID, &img.StoreID, &img.ImageURL, &img.PublicID,
			&img.IsPrimary, &img.UploadedBy, &img.CreatedAt); err != nil {
			return fmt.Errorf("scan store image: %w", err)
		}
		d.Images = append(d.Images, img)
	}
	return rows.Err()
}

func (r *StoreRepo) scanOne(row pgx.Row, op string) (*entity.Store, error) {
	var s entity.Store
	err := row.Scan(
		&s.ID, &s.Name, &s.Address, &s.Phone, &s.Neighborhood, &s.StoreTypeID, &s.RouteID, &s.ManagerID,
		&s.ImageURL, &s.Latitude, &s.Longitude, &s.OpeningTime, &s.ClosingTime, &s.City, &s.State, &s.Country,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// scanStoreDetail escanea la fila del detailQuery. Las columnas del manager
// vienen en NULL cuando la tienda no tiene tendero.
func scanStoreDetail(row pgx.Row) (*repository.StoreDetail, error) {
	var d repository.StoreDetail
	var (
		mgrID        *int64
		mgrName      *string
		mgrEmail     *string
		mgrPhone     *string
		mgrRoleID    *int64
		mgrStatus    *string
		mgrLastLogin *time.Time
		mgrCreatedAt *time.Time
		mgrUpdatedAt *time.Time
	)
	err := row.Scan(
		&d.Store.ID, &d.Store.Name, &d.Store.Address, &d.Store.Phone, &d.Store.Neighborhood,
		&d.Store.StoreTypeID, &d.Store.RouteID, &d.Store.ManagerID,
		&d.Store.ImageURL, &d.Store.Latitude, &d.Store.Longitude,
		&d.Store.OpeningTime, &d.Store.ClosingTime, &d.Store.City, &d.Store.State, &d.Store.Country,
		&d.Store.CreatedAt, &d.Store.UpdatedAt,
		&d.StoreType.ID, &d.StoreType.Name,
		&mgrID, &mgrName, &mgrEmail, &mgrPhone, &mgrRoleID, &mgrStatus,
		&mgrLastLogin, &mgrCreatedAt, &mgrUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mgrID != nil {
		d.Manager = &entity.User{
			ID:        *mgrID,
			Name:      deref(mgrName),
			Email:     deref(mgrEmail),
			Phone:     deref(mgrPhone),
			RoleID:    derefInt(mgrRoleID),
			Status:    deref(mgrStatus),
			LastLogin: mgrLastLogin,
		}
		if mgrCreatedAt != nil {
			d.Manager.CreatedAt = *mgrCreatedAt
		}
		if mgrUpdatedAt != nil {
			d.Manager.UpdatedAt = *mgrUpdatedAt
		}
	}
	return &d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
