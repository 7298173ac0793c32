package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	domainRepo "github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/pagination"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new catalog item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return dbFromContext(ctx, r.db).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := dbFromContext(ctx, r.db).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByUPC(ctx context.Context, upc string) (*entity.Item, error) {
	var item entity.Item
	err := dbFromContext(ctx, r.db).First(&item, "upc = ?", upc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return dbFromContext(ctx, r.db).Save(item).Error
}

// UpdatePrice mutates the price column only. Returns false when no row
// carries the given UPC.
func (r *itemRepository) UpdatePrice(ctx context.Context, upc string, price int64) (bool, error) {
	res := dbFromContext(ctx, r.db).Model(&entity.Item{}).
		Where("upc = ?", upc).
		Update("price", price)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *itemRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Item, int64, error) {
	var items []entity.Item
	var total int64

	query := dbFromContext(ctx, r.db).Model(&entity.Item{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("upc LIKE ? OR brand LIKE ? OR product LIKE ? OR description LIKE ?",
			like, like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("product ASC").
		Find(&items).Error

	return items, total, err
}

func (r *itemRepository) DeleteAll(ctx context.Context) error {
	return dbFromContext(ctx, r.db).Where("1 = 1").Delete(&entity.Item{}).Error
}
