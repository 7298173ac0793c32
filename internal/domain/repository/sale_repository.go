package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	// Create persists the sale together with its line items as one unit
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	// ListByCustomer returns the customer's sales newest first
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error)
	// ListOutstandingByCustomer returns non-fully-paid sales oldest first,
	// the order payment allocation walks them in
	ListOutstandingByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error)
	// OutstandingTotal returns SUM(total_amount - paid_amount) in cents
	// over the customer's non-fully-paid sales
	OutstandingTotal(ctx context.Context, customerID uuid.UUID) (int64, error)
}
