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

var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// ProductRepo adaptador PostgreSQL para productos terminados.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Name, p.Description, p.Price, p.Active, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	var p entity.Product
	query := `SELECT id, name, description, price, active, created_at, updated_at FROM products WHERE id = $1`
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Price, p.Active, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT id, name, description, price, active, created_at, updated_at
		FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Active,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// RecipeRepo adaptador PostgreSQL para recetas y sus renglones.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador de recetas.
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste la receta y sus renglones. Si q es una tx, todo el conjunto
// es atómico.
func (r *RecipeRepo) Create(rec *entity.Recipe, items []entity.RecipeItem) error {
	query := `
		INSERT INTO recipes (product_id, name, yield, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		rec.ProductID, rec.Name, rec.Yield, rec.CreatedAt, rec.UpdatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}
	for i := range items {
		items[i].RecipeID = rec.ID
		err := r.q.QueryRow(context.Background(),
			`INSERT INTO recipe_items (recipe_id, inventory_supply_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
			items[i].RecipeID, items[i].InventorySupplyID, items[i].Quantity,
		).Scan(&items[i].ID)
		if err != nil {
			return fmt.Errorf("insert recipe item: %w", err)
		}
	}
	return nil
}

func (r *RecipeRepo) GetByID(id int64) (*entity.Recipe, []entity.RecipeItem, error) {
	var rec entity.Recipe
	query := `SELECT id, product_id, name, yield, created_at, updated_at FROM recipes WHERE id = $1`
	err := r.q.QueryRow(context.Background(), query, id).
		Scan(&rec.ID, &rec.ProductID, &rec.Name, &rec.Yield, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get recipe: %w", err)
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT id, recipe_id, inventory_supply_id, quantity FROM recipe_items WHERE recipe_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list recipe items: %w", err)
	}
	defer rows.Close()
	var items []entity.RecipeItem
	for rows.Next() {
		var it entity.RecipeItem
		if err := rows.Scan(&it.ID, &it.RecipeID, &it.InventorySupplyID, &it.Quantity); err != nil {
			return nil, nil, fmt.Errorf("scan recipe item: %w", err)
		}
		items = append(items, it)
	}
	return &rec, items, rows.Err()
}

func (r *RecipeRepo) ListByProduct(productID int64) ([]*entity.Recipe, error) {
	query := `SELECT id, product_id, name, yield, created_at, updated_at
		FROM recipes WHERE product_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.Name, &rec.Yield,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete elimina la receta; los renglones caen por FK ON DELETE CASCADE.
func (r *RecipeRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}
