package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo adaptador PostgreSQL para ventas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y asigna s.ID.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (reference, store_id, user_id, payment_method_id, total, sale_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.Reference, s.StoreID, s.UserID, s.PaymentMethodID, s.Total, s.SaleDate, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de venta.
func (r *SaleRepo) CreateItem(it *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		it.SaleID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal,
	).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

const saleColumns = `id, reference, store_id, user_id, payment_method_id, total, sale_date, created_at`

// GetByID devuelve una venta con renglones.
func (r *SaleRepo) GetByID(id int64) (*repository.SaleWithItems, error) {
	var s entity.Sale
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&s.ID, &s.Reference, &s.StoreID, &s.UserID, &s.PaymentMethodID,
			&s.Total, &s.SaleDate, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsFor(s.ID)
	if err != nil {
		return nil, err
	}
	return &repository.SaleWithItems{Sale: s, Items: items}, nil
}

// ListByStore lista las ventas de una tienda, más recientes primero.
func (r *SaleRepo) ListByStore(storeID int64, limit, offset int) ([]*repository.SaleWithItems, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE store_id = $1
		ORDER BY sale_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*repository.SaleWithItems
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Reference, &s.StoreID, &s.UserID, &s.PaymentMethodID,
			&s.Total, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &repository.SaleWithItems{Sale: s})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, sw := range list {
		items, err := r.itemsFor(sw.Sale.ID)
		if err != nil {
			return nil, err
		}
		sw.Items = items
	}
	return list, nil
}

func (r *SaleRepo) itemsFor(saleID int64) ([]entity.SaleItem, error) {
	query := `SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity,
			&it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
