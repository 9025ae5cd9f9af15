package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

var _ repository.RouteRepository = (*RouteRepo)(nil)

// RouteRepo implementación del puerto RouteRepository sobre PostgreSQL.
type RouteRepo struct {
	q Querier
}

// NewRouteRepository construye el adaptador de rutas de reparto.
func NewRouteRepository(q Querier) *RouteRepo {
	return &RouteRepo{q: q}
}

// Create persiste una nueva ruta y asigna route.ID.
func (r *RouteRepo) Create(route *entity.Route) error {
	query := `
		INSERT INTO routes (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		route.Name, route.Description, route.CreatedAt, route.UpdatedAt,
	).Scan(&route.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert route: %w", err)
	}
	return nil
}

// GetByID obtiene una ruta por ID.
func (r *RouteRepo) GetByID(id int64) (*entity.Route, error) {
	var route entity.Route
	query := `SELECT id, name, description, created_at, updated_at FROM routes WHERE id = $1`
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&route.ID, &route.Name, &route.Description, &route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get route: %w", err)
	}
	return &route, nil
}

// Update actualiza una ruta.
func (r *RouteRepo) Update(route *entity.Route) error {
	query := `UPDATE routes SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		route.ID, route.Name, route.Description, route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update route: %w", err)
	}
	return nil
}

// List lista todas las rutas.
func (r *RouteRepo) List() ([]*entity.Route, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, created_at, updated_at FROM routes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Route
	for rows.Next() {
		var route entity.Route
		if err := rows.Scan(&route.ID, &route.Name, &route.Description,
			&route.CreatedAt, &route.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		list = append(list, &route)
	}
	return list, rows.Err()
}

// Delete elimina una ruta por ID. Las tiendas asignadas quedan huérfanas
// (FK con ON DELETE SET NULL).
func (r *RouteRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete route: %w", err)
	}
	return nil
}
