package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// SaleService builds sale drafts and persists them as atomic units
type SaleService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	catalog      *CatalogService
	tx           repository.TxRunner
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	catalog *CatalogService,
	tx repository.TxRunner,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		catalog:      catalog,
		tx:           tx,
	}
}

// DraftLineInput is one requested line of a sale: either a catalog code
// with a quantity, or an ad-hoc name and price for items with no catalog
// backing. UnitPrice is in cents and only read for ad-hoc lines.
type DraftLineInput struct {
	UPC       string
	Name      string
	Quantity  int
	UnitPrice int64
	AdHoc     bool
}

// BuildDraft resolves the requested lines against the catalog and
// accumulates them into a draft, merging repeated catalog codes.
func (s *SaleService) BuildDraft(ctx context.Context, customerID uuid.UUID, lines []DraftLineInput) (*entity.SaleDraft, error) {
	draft := entity.NewSaleDraft(customerID)

	for _, in := range lines {
		qty := in.Quantity
		if qty == 0 {
			qty = 1
		}

		if in.AdHoc {
			if err := draft.AddAdHocLine(in.Name, qty, in.UnitPrice); err != nil {
				return nil, err
			}
			continue
		}

		item, err := s.catalog.Lookup(ctx, in.UPC)
		if err != nil {
			return nil, err
		}
		if err := draft.AddCatalogLine(item, qty); err != nil {
			return nil, err
		}
	}

	return draft, nil
}

// Finalize validates the draft and persists the sale with all its line
// items as one transaction. Paid amount semantics follow the payment
// status: fully paid means the whole total, pay later means nothing,
// partial takes the caller's amount, which must fit within the total.
func (s *SaleService) Finalize(ctx context.Context, draft *entity.SaleDraft, status enum.PaymentStatus, paidAmount int64) (*entity.Sale, error) {
	if draft == nil || draft.Empty() {
		return nil, apperror.NewValidationError("Sale has no items")
	}
	if draft.CustomerID == uuid.Nil {
		return nil, apperror.NewValidationError("Sale has no customer")
	}
	if !status.Valid() {
		return nil, apperror.NewValidationError("Unknown payment status")
	}

	customer, err := s.customerRepo.GetByID(ctx, draft.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	total := draft.Total()

	switch status {
	case enum.PaymentStatusFullyPaid:
		paidAmount = total
	case enum.PaymentStatusPayLater:
		paidAmount = 0
	case enum.PaymentStatusPartial:
		if paidAmount < 0 || paidAmount > total {
			return nil, apperror.NewValidationError("Partial payment must be between zero and the sale total")
		}
		// a partial payment covering the whole total is a full payment
		if paidAmount >= total {
			status = enum.PaymentStatusFullyPaid
		}
	}

	sale := &entity.Sale{
		CustomerID:    draft.CustomerID,
		TotalAmount:   total,
		PaidAmount:    paidAmount,
		PaymentStatus: status,
		SaleDate:      time.Now(),
	}
	for _, l := range draft.Lines {
		sale.Lines = append(sale.Lines, entity.SaleLineItem{
			ItemName:        l.Name,
			UPC:             l.UPC,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountedPrice: l.DiscountedPrice,
			IsAdHoc:         l.Kind == entity.LineAdHoc,
		})
	}

	err = s.tx.InTx(ctx, func(txCtx context.Context) error {
		return s.saleRepo.Create(txCtx, sale)
	})
	if err != nil {
		return nil, err
	}

	return s.saleRepo.GetWithLines(ctx, sale.ID)
}

// GetSale retrieves a sale with its line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}
