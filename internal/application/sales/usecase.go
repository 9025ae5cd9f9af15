// Package sales registra ventas contra tiendas. La venta y sus renglones se
// persisten dentro de una única transacción.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// UseCase casos de uso de ventas.
type UseCase struct {
	tx          TxRunner
	storeRepo   repository.StoreRepository
	paymentRepo repository.PaymentMethodRepository
	saleRepo    repository.SaleRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	tx TxRunner,
	storeRepo repository.StoreRepository,
	paymentRepo repository.PaymentMethodRepository,
	saleRepo repository.SaleRepository,
) *UseCase {
	return &UseCase{tx: tx, storeRepo: storeRepo, paymentRepo: paymentRepo, saleRepo: saleRepo}
}

// Create registra una venta con sus renglones. El precio unitario se toma del
// producto persistido y el total se calcula en servidor; todo dentro de una
// transacción (o se crea completa o no se crea).
func (uc *UseCase) Create(ctx context.Context, userID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.StoreID == 0 || in.PaymentMethodID == 0 || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	method, err := uc.paymentRepo.GetByID(in.PaymentMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.SaleResponse
	err = uc.tx.Run(ctx, func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error {
		total := decimal.Zero
		items := make([]entity.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			if it.Quantity <= 0 {
				return domain.ErrInvalidInput
			}
			product, err := productRepo.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			subtotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			items = append(items, entity.SaleItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
			total = total.Add(subtotal)
		}

		now := time.Now()
		sale := &entity.Sale{
			Reference:       uuid.New().String(),
			StoreID:         in.StoreID,
			UserID:          userID,
			PaymentMethodID: in.PaymentMethodID,
			Total:           total,
			SaleDate:        now,
			CreatedAt:       now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		resp := &dto.SaleResponse{
			ID:              sale.ID,
			Reference:       sale.Reference,
			StoreID:         sale.StoreID,
			UserID:          sale.UserID,
			PaymentMethodID: sale.PaymentMethodID,
			Total:           sale.Total,
			SaleDate:        sale.SaleDate,
		}
		for i := range items {
			items[i].SaleID = sale.ID
			if err := saleRepo.CreateItem(&items[i]); err != nil {
				return err
			}
			resp.Items = append(resp.Items, dto.SaleItemResponse{
				ID:        items[i].ID,
				ProductID: items[i].ProductID,
				Quantity:  items[i].Quantity,
				UnitPrice: items[i].UnitPrice,
				Subtotal:  items[i].Subtotal,
			})
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID devuelve una venta con renglones.
func (uc *UseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(s), nil
}

// ListByStore lista las ventas de una tienda con renglones.
func (uc *UseCase) ListByStore(storeID int64, limit, offset int) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *repository.SaleWithItems) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:              s.Sale.ID,
		Reference:       s.Sale.Reference,
		StoreID:         s.Sale.StoreID,
		UserID:          s.Sale.UserID,
		PaymentMethodID: s.Sale.PaymentMethodID,
		Total:           s.Sale.Total,
		SaleDate:        s.Sale.SaleDate,
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
