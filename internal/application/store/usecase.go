// Package store implementa el flujo de tiendas y su vínculo con el tendero
// (manager): crear o actualizar una tienda puede crear o actualizar de paso
// el usuario que la administra.
package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
	"github.com/jhoicas/siloe-api/pkg/normalize"
)

// Config reglas fijas del alta de tenderos, cargadas una vez al arranque.
type Config struct {
	DefaultRoleID          int64  // rol shopKeeper
	DefaultManagerPassword string // respaldo cuando la tienda no envía password
	BcryptCost             int
}

// UseCase casos de uso de tiendas.
type UseCase struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	cfg       Config
}

// NewUseCase construye el caso de uso de tiendas.
func NewUseCase(storeRepo repository.StoreRepository, userRepo repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{storeRepo: storeRepo, userRepo: userRepo, cfg: cfg}
}

// Create crea una tienda, con tendero opcional. La unicidad es por el par
// canónico (name, neighborhood). La verificación duplicado-luego-insert no es
// atómica frente a creaciones concurrentes: el índice único de la tabla
// stores desempata y el repositorio lo reporta como ErrStoreAlreadyExists.
func (uc *UseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	sp := in.Store
	if sp.Name == "" || sp.Address == "" || sp.StoreTypeID == 0 || sp.Neighborhood == "" {
		return nil, domain.ErrInvalidInput
	}

	name := normalize.StoreName(sp.Name)
	neighborhood := normalize.Neighborhood(sp.Neighborhood)

	existing, err := uc.storeRepo.FindByNameAndNeighborhood(name, neighborhood)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrStoreAlreadyExists
	}

	var managerID *int64
	if in.User != nil {
		taken, err := uc.userRepo.GetByEmail(in.User.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		password := in.User.Password
		if password == "" {
			password = uc.cfg.DefaultManagerPassword
		}
		manager, err := uc.newManager(in.User, password)
		if err != nil {
			return nil, err
		}
		if err := uc.userRepo.Create(manager); err != nil {
			return nil, err
		}
		managerID = &manager.ID
	}

	now := time.Now()
	store := &entity.Store{
		Name:         name,
		Address:      sp.Address,
		Phone:        sp.Phone,
		Neighborhood: neighborhood,
		StoreTypeID:  sp.StoreTypeID,
		RouteID:      sp.RouteID,
		ManagerID:    managerID,
		ImageURL:     sp.ImageURL,
		Latitude:     sp.Latitude,
		Longitude:    sp.Longitude,
		OpeningTime:  sp.OpeningTime,
		ClosingTime:  sp.ClosingTime,
		City:         sp.City,
		State:        sp.State,
		Country:      sp.Country,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return uc.detail(store.ID)
}

// Update actualiza la tienda id con semántica parcial: los punteros nil
// conservan el valor actual y RouteID es tri-estado (ausente conserva, null
// desasigna la ruta, valor reasigna). Si viene newUser, el tendero existente
// se sobreescribe en sitio; si el manager_id apunta a un usuario borrado se
// crea uno nuevo y se re-apunta la tienda.
func (uc *UseCase) Update(id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}

	p := in.Store
	if p.Name == "" || p.Address == "" || p.StoreTypeID == 0 || p.Neighborhood == "" {
		return nil, domain.ErrInvalidInput
	}

	store.Name = normalize.StoreName(p.Name)
	store.Address = p.Address
	store.Neighborhood = normalize.Neighborhood(p.Neighborhood)
	store.StoreTypeID = p.StoreTypeID
	if p.Phone != nil {
		store.Phone = *p.Phone
	}
	if p.RouteID.Present {
		store.RouteID = p.RouteID.Value
	}
	if p.ImageURL != nil {
		store.ImageURL = *p.ImageURL
	}
	if p.Latitude != nil {
		store.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		store.Longitude = p.Longitude
	}
	if p.OpeningTime != nil {
		store.OpeningTime = *p.OpeningTime
	}
	if p.ClosingTime != nil {
		store.ClosingTime = *p.ClosingTime
	}
	if p.City != nil {
		store.City = *p.City
	}
	if p.State != nil {
		store.State = *p.State
	}
	if p.Country != nil {
		store.Country = *p.Country
	}

	if in.User != nil {
		if err := uc.upsertManager(store, in.User); err != nil {
			return nil, err
		}
	}
	// Sin newUser el manager_id queda intacto.

	store.UpdatedAt = time.Now()
	if err := uc.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return uc.detail(store.ID)
}

// upsertManager aplica el payload de tendero sobre la tienda: actualiza el
// manager vigente en sitio, o crea uno nuevo (referencia colgante o tienda
// sin manager) con el rol y la contraseña de respaldo configurados.
func (uc *UseCase) upsertManager(store *entity.Store, payload *dto.ManagerPayload) error {
	if store.ManagerID != nil {
		manager, err := uc.userRepo.GetByID(*store.ManagerID)
		if err != nil {
			return err
		}
		if manager != nil {
			manager.Name = payload.Name
			manager.Email = payload.Email
			manager.Phone = entity.ComposePhone(payload.CountryCode, payload.Phone)
			manager.Status = statusOrInactive(payload.Status)
			manager.UpdatedAt = time.Now()
			return uc.userRepo.Update(manager)
		}
		// Caso poco frecuente: manager_id asignado pero el registro no existe.
	}
	created, err := uc.newManager(payload, uc.cfg.DefaultManagerPassword)
	if err != nil {
		return err
	}
	if err := uc.userRepo.Create(created); err != nil {
		return err
	}
	store.ManagerID = &created.ID
	return nil
}

// newManager arma la entidad de tendero con rol por defecto y password hasheada.
func (uc *UseCase) newManager(payload *dto.ManagerPayload, password string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.User{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        entity.ComposePhone(payload.CountryCode, payload.Phone),
		PasswordHash: string(hash),
		RoleID:       uc.cfg.DefaultRoleID,
		Status:       statusOrInactive(payload.Status),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func statusOrInactive(status string) string {
	if status == "" {
		return entity.UserStatusInactive
	}
	return status
}

// AssignRoute asigna (o quita, con nil) la ruta de una tienda.
func (uc *UseCase) AssignRoute(storeID int64, routeID *int64) (*dto.StoreResponse, error) {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	store.RouteID = routeID
	store.UpdatedAt = time.Now()
	if err := uc.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return uc.detail(store.ID)
}

// ListByRoute devuelve las tiendas de una ruta con sus relaciones.
func (uc *UseCase) ListByRoute(routeID int64) ([]dto.StoreResponse, error) {
	details, err := uc.storeRepo.ListByRoute(routeID)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(details), nil
}

// ListOrphans devuelve las tiendas huérfanas (sin ruta asignada).
func (uc *UseCase) ListOrphans() ([]dto.StoreResponse, error) {
	details, err := uc.storeRepo.ListOrphans()
	if err != nil {
		return nil, err
	}
	return toStoreResponses(details), nil
}

// GetByID devuelve la tienda con sus relaciones.
func (uc *UseCase) GetByID(id int64) (*dto.StoreResponse, error) {
	detail, err := uc.storeRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(detail), nil
}

// Delete elimina una tienda por id.
func (uc *UseCase) Delete(id int64) error {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrStoreNotFound
	}
	return uc.storeRepo.Delete(id)
}

func (uc *UseCase) detail(id int64) (*dto.StoreResponse, error) {
	detail, err := uc.storeRepo.GetDetail(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrStoreNotFound
	}
	return toStoreResponse(detail), nil
}

func toStoreResponses(details []*repository.StoreDetail) []dto.StoreResponse {
	out := make([]dto.StoreResponse, 0, len(details))
	for _, d := range details {
		out = append(out, *toStoreResponse(d))
	}
	return out
}

func toStoreResponse(d *repository.StoreDetail) *dto.StoreResponse {
	s := d.Store
	resp := &dto.StoreResponse{
		ID:           s.ID,
		Name:         s.Name,
		Address:      s.Address,
		Phone:        s.Phone,
		Neighborhood: s.Neighborhood,
		RouteID:      s.RouteID,
		ImageURL:     s.ImageURL,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		OpeningTime:  s.OpeningTime,
		ClosingTime:  s.ClosingTime,
		City:         s.City,
		State:        s.State,
		Country:      s.Country,
		StoreType:    dto.StoreTypeRef{ID: d.StoreType.ID, Name: d.StoreType.Name},
	}
	if d.Manager != nil {
		resp.Manager = &dto.ManagerSummary{
			ID:     d.Manager.ID,
			Name:   d.Manager.Name,
			Email:  d.Manager.Email,
			Phone:  d.Manager.Phone,
			Status: d.Manager.Status,
		}
	}
	for _, img := range d.Images {
		resp.Images = append(resp.Images, dto.StoreImageResponse{
			ID:        img.ID,
			ImageURL:  img.ImageURL,
			PublicID:  img.PublicID,
			IsPrimary: img.IsPrimary,
		})
	}
	return resp
}
