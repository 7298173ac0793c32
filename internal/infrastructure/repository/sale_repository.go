package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	domainRepo "github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists the sale and its line items. GORM writes the
// association inside one transaction, so a failed line insert rolls the
// sale row back with it.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return dbFromContext(ctx, r.db).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFromContext(ctx, r.db).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFromContext(ctx, r.db).
		Preload("Customer").
		Preload("Lines").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return dbFromContext(ctx, r.db).Model(sale).
		Select("paid_amount", "payment_status").
		Updates(sale).Error
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := dbFromContext(ctx, r.db).
		Preload("Lines").
		Where("customer_id = ?", customerID).
		Order("sale_date DESC").
		Find(&sales).Error
	return sales, err
}

// ListOutstandingByCustomer returns the customer's unpaid and partially
// paid sales oldest first. Payment allocation depends on this ordering.
func (r *saleRepository) ListOutstandingByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := dbFromContext(ctx, r.db).
		Where("customer_id = ? AND payment_status <> ?", customerID, enum.PaymentStatusFullyPaid).
		Order("sale_date ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) OutstandingTotal(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var total *int64
	err := dbFromContext(ctx, r.db).Model(&entity.Sale{}).
		Select("SUM(total_amount - paid_amount)").
		Where("customer_id = ? AND payment_status <> ?", customerID, enum.PaymentStatusFullyPaid).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
