package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/pagination"
	"gorm.io/gorm"
)

// CustomerService handles the customer directory and balance reads
type CustomerService struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, saleRepo: saleRepo}
}

// FindByPhone looks a customer up by their phone number
func (s *CustomerService) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, apperror.NewValidationError("Phone number is required")
	}

	customer, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// Create registers a new customer. Phone numbers are unique; a second
// registration under the same number is rejected.
func (s *CustomerService) Create(ctx context.Context, phone, name string) (*entity.Customer, error) {
	phone = strings.TrimSpace(phone)
	name = strings.TrimSpace(name)

	if phone == "" {
		return nil, apperror.NewValidationError("Phone number is required")
	}
	if name == "" {
		return nil, apperror.NewValidationError("Customer name is required")
	}

	existing, err := s.customerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewDuplicateError("Customer with phone " + phone + " already exists")
	}

	customer := &entity.Customer{
		Phone: phone,
		Name:  name,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewDuplicateError("Customer with phone " + phone + " already exists")
		}
		return nil, err
	}
	return customer, nil
}

// Balance returns the customer's outstanding balance in cents: the sum
// of total minus paid over every sale that is not fully paid.
func (s *CustomerService) Balance(ctx context.Context, customerID uuid.UUID) (int64, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return 0, err
	}
	if customer == nil {
		return 0, apperror.NewNotFoundError("Customer")
	}

	return s.saleRepo.OutstandingTotal(ctx, customerID)
}

// SalesHistory returns the customer's sales newest first
func (s *CustomerService) SalesHistory(ctx context.Context, customerID uuid.UUID) ([]entity.Sale, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	return s.saleRepo.ListByCustomer(ctx, customerID)
}

// ListCustomers lists customers with optional name/phone search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}
