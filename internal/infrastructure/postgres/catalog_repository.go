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

var _ repository.StoreTypeRepository = (*StoreTypeRepo)(nil)
var _ repository.MeasurementUnitRepository = (*MeasurementUnitRepo)(nil)
var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// StoreTypeRepo adaptador PostgreSQL para tipos de tienda.
type StoreTypeRepo struct {
	q Querier
}

// NewStoreTypeRepository construye el adaptador de tipos de tienda.
func NewStoreTypeRepository(q Querier) *StoreTypeRepo {
	return &StoreTypeRepo{q: q}
}

func (r *StoreTypeRepo) Create(t *entity.StoreType) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO store_types (name) VALUES ($1) RETURNING id`, t.Name,
	).Scan(&t.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store type: %w", err)
	}
	return nil
}

func (r *StoreTypeRepo) GetByID(id int64) (*entity.StoreType, error) {
	var t entity.StoreType
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM store_types WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store type: %w", err)
	}
	return &t, nil
}

func (r *StoreTypeRepo) Update(t *entity.StoreType) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE store_types SET name = $2 WHERE id = $1`, t.ID, t.Name)
	if err != nil {
		return fmt.Errorf("update store type: %w", err)
	}
	return nil
}

func (r *StoreTypeRepo) List() ([]*entity.StoreType, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM store_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list store types: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoreType
	for rows.Next() {
		var t entity.StoreType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan store type: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *StoreTypeRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM store_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store type: %w", err)
	}
	return nil
}

// MeasurementUnitRepo adaptador PostgreSQL para unidades de medida.
type MeasurementUnitRepo struct {
	q Querier
}

// NewMeasurementUnitRepository construye el adaptador de unidades de medida.
func NewMeasurementUnitRepository(q Querier) *MeasurementUnitRepo {
	return &MeasurementUnitRepo{q: q}
}

func (r *MeasurementUnitRepo) Create(u *entity.MeasurementUnit) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO measurement_units (name, symbol) VALUES ($1, $2) RETURNING id`,
		u.Name, u.Symbol,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert measurement unit: %w", err)
	}
	return nil
}

func (r *MeasurementUnitRepo) List() ([]*entity.MeasurementUnit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, symbol FROM measurement_units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list measurement units: %w", err)
	}
	defer rows.Close()
	var list []*entity.MeasurementUnit
	for rows.Next() {
		var u entity.MeasurementUnit
		if err := rows.Scan(&u.ID, &u.Name, &u.Symbol); err != nil {
			return nil, fmt.Errorf("scan measurement unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *MeasurementUnitRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM measurement_units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete measurement unit: %w", err)
	}
	return nil
}

// PaymentMethodRepo adaptador PostgreSQL para medios de pago.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador de medios de pago.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) Create(m *entity.PaymentMethod) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO payment_methods (name) VALUES ($1) RETURNING id`, m.Name,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM payment_methods WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return &m, nil
}

func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM payment_methods ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
