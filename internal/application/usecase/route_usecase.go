package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// ManifestGenerator puerto de generación del manifiesto de reparto en PDF.
type ManifestGenerator interface {
	GenerateRouteManifest(ctx context.Context, route *entity.Route, stores []*repository.StoreDetail) ([]byte, error)
}

// RouteUseCase CRUD de rutas de reparto y generación del manifiesto.
type RouteUseCase struct {
	repo      repository.RouteRepository
	storeRepo repository.StoreRepository
	manifest  ManifestGenerator
}

// NewRouteUseCase construye el caso de uso.
func NewRouteUseCase(repo repository.RouteRepository, storeRepo repository.StoreRepository, manifest ManifestGenerator) *RouteUseCase {
	return &RouteUseCase{repo: repo, storeRepo: storeRepo, manifest: manifest}
}

// Create crea una ruta.
func (uc *RouteUseCase) Create(in dto.RouteRequest) (*dto.RouteResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	route := &entity.Route{
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(route); err != nil {
		return nil, err
	}
	return toRouteResponse(route), nil
}

// GetByID obtiene una ruta por id.
func (uc *RouteUseCase) GetByID(id int64) (*dto.RouteResponse, error) {
	route, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrNotFound
	}
	return toRouteResponse(route), nil
}

// Update actualiza nombre y descripción de una ruta.
func (uc *RouteUseCase) Update(id int64, in dto.RouteRequest) (*dto.RouteResponse, error) {
	route, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		route.Name = in.Name
	}
	if in.Description != "" {
		route.Description = in.Description
	}
	route.UpdatedAt = time.Now()
	if err := uc.repo.Update(route); err != nil {
		return nil, err
	}
	return toRouteResponse(route), nil
}

// List lista todas las rutas.
func (uc *RouteUseCase) List() ([]dto.RouteResponse, error) {
	routes, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RouteResponse, 0, len(routes))
	for _, r := range routes {
		out = append(out, *toRouteResponse(r))
	}
	return out, nil
}

// Delete elimina una ruta.
func (uc *RouteUseCase) Delete(id int64) error {
	route, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if route == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Manifest genera el PDF del manifiesto de reparto de la ruta: la hoja con
// las tiendas a visitar que el repartidor lleva impresa.
func (uc *RouteUseCase) Manifest(ctx context.Context, id int64) ([]byte, error) {
	route, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, domain.ErrNotFound
	}
	stores, err := uc.storeRepo.ListByRoute(id)
	if err != nil {
		return nil, err
	}
	return uc.manifest.GenerateRouteManifest(ctx, route, stores)
}

func toRouteResponse(r *entity.Route) *dto.RouteResponse {
	return &dto.RouteResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
