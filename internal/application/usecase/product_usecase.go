package usecase

import (
	"time"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos terminados y recetas.
type ProductUseCase struct {
	products repository.ProductRepository
	recipes  repository.RecipeRepository
	supplies repository.SupplyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	recipes repository.RecipeRepository,
	supplies repository.SupplyRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, recipes: recipes, supplies: supplies}
}

// Create crea un producto.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Update actualización parcial de un producto.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.Price = *in.Price
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id int64) error {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

// CreateRecipe crea una receta con sus renglones; valida producto e insumos.
func (uc *ProductUseCase) CreateRecipe(in dto.RecipeRequest) (*dto.RecipeResponse, error) {
	if in.ProductID == 0 || in.Name == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	items := make([]entity.RecipeItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity.IsZero() || it.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		s, err := uc.supplies.GetByID(it.InventorySupplyID)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.RecipeItem{
			InventorySupplyID: it.InventorySupplyID,
			Quantity:          it.Quantity,
		})
	}
	now := time.Now()
	r := &entity.Recipe{
		ProductID: in.ProductID,
		Name:      in.Name,
		Yield:     in.Yield,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.recipes.Create(r, items); err != nil {
		return nil, err
	}
	return uc.GetRecipe(r.ID)
}

// GetRecipe devuelve una receta con sus renglones.
func (uc *ProductUseCase) GetRecipe(id int64) (*dto.RecipeResponse, error) {
	r, items, err := uc.recipes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.RecipeResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		Name:      r.Name,
		Yield:     r.Yield,
		CreatedAt: r.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.RecipeItemResponse{
			ID:                it.ID,
			InventorySupplyID: it.InventorySupplyID,
			Quantity:          it.Quantity,
		})
	}
	return resp, nil
}

// ListRecipesByProduct lista las recetas de un producto (sin renglones).
func (uc *ProductUseCase) ListRecipesByProduct(productID int64) ([]dto.RecipeResponse, error) {
	list, err := uc.recipes.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.RecipeResponse{
			ID:        r.ID,
			ProductID: r.ProductID,
			Name:      r.Name,
			Yield:     r.Yield,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

// DeleteRecipe elimina una receta y sus renglones.
func (uc *ProductUseCase) DeleteRecipe(id int64) error {
	r, _, err := uc.recipes.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.recipes.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
