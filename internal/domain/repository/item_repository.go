package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/pkg/pagination"
)

// ItemRepository defines the interface for catalog item data operations.
// GetByUPC matches the stored code exactly; normalization and the lookup
// fallback chain live in the catalog service.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByUPC(ctx context.Context, upc string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	UpdatePrice(ctx context.Context, upc string, price int64) (bool, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Item, int64, error)
	DeleteAll(ctx context.Context) error
}
