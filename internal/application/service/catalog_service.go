package service

import (
	"context"
	"errors"
	"strings"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/pagination"
	"gorm.io/gorm"
)

// UpsertMode selects how UpsertFull treats an existing UPC
type UpsertMode int

const (
	// InsertOnly reports a duplicate when the normalized UPC already exists
	InsertOnly UpsertMode = iota
	// UpdateOrInsert updates the existing row in place, inserting otherwise
	UpdateOrInsert
)

// CatalogService handles catalog items and UPC resolution
type CatalogService struct {
	itemRepo repository.ItemRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(itemRepo repository.ItemRepository) *CatalogService {
	return &CatalogService{itemRepo: itemRepo}
}

// NormalizeUPC pads an 11-character code with one leading zero. UPC-A
// codes are frequently scanned or keyed without their leading digit;
// everything else passes through unchanged.
func NormalizeUPC(code string) string {
	if len(code) == 11 {
		return "0" + code
	}
	return code
}

// Lookup resolves a raw code to a catalog item. Resolution order:
// the normalized code, the original code if different, then the code
// with one leading zero stripped. The chain compensates for inconsistent
// scanner and manual-entry formatting and must try all three forms
// before reporting a miss.
func (s *CatalogService) Lookup(ctx context.Context, code string) (*entity.Item, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperror.NewValidationError("UPC is required")
	}

	candidates := []string{NormalizeUPC(code)}
	if code != candidates[0] {
		candidates = append(candidates, code)
	}
	if strings.HasPrefix(code, "0") {
		candidates = append(candidates, code[1:])
	}

	for _, c := range candidates {
		item, err := s.itemRepo.GetByUPC(ctx, c)
		if err != nil {
			return nil, err
		}
		if item != nil {
			return item, nil
		}
	}
	return nil, apperror.NewNotFoundError("Item")
}

// Exists reports whether the normalized form of the code is already in
// the catalog. Unlike Lookup it checks one form only, so import modes
// can distinguish an insert from an in-place update.
func (s *CatalogService) Exists(ctx context.Context, code string) (bool, error) {
	item, err := s.itemRepo.GetByUPC(ctx, NormalizeUPC(strings.TrimSpace(code)))
	if err != nil {
		return false, err
	}
	return item != nil, nil
}

// UpsertItemInput represents the full catalog row used by imports and
// the item maintenance flow. Cost and Price are in cents.
type UpsertItemInput struct {
	UPC         string
	Brand       string
	Product     string
	Description string
	Cost        int64
	Price       int64
}

func (in *UpsertItemInput) validate() error {
	if strings.TrimSpace(in.UPC) == "" {
		return apperror.NewValidationError("UPC is required")
	}
	if strings.TrimSpace(in.Product) == "" && strings.TrimSpace(in.Brand) == "" {
		return apperror.NewValidationError("Product or brand name is required")
	}
	if in.Price <= 0 {
		return apperror.NewValidationError("Price must be positive")
	}
	if in.Cost < 0 {
		return apperror.NewValidationError("Cost cannot be negative")
	}
	return nil
}

// UpsertFull creates or updates a catalog item depending on mode. The
// UPC is normalized before the existence check so an 11-digit code and
// its padded form hit the same row.
func (s *CatalogService) UpsertFull(ctx context.Context, input *UpsertItemInput, mode UpsertMode) (*entity.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	upc := NormalizeUPC(strings.TrimSpace(input.UPC))
	existing, err := s.itemRepo.GetByUPC(ctx, upc)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if mode == InsertOnly {
			return nil, apperror.NewDuplicateError("Item with UPC " + upc + " already exists")
		}
		existing.Brand = strings.TrimSpace(input.Brand)
		existing.Product = strings.TrimSpace(input.Product)
		existing.Description = strings.TrimSpace(input.Description)
		existing.Cost = input.Cost
		existing.Price = input.Price
		if err := s.itemRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &entity.Item{
		UPC:         upc,
		Brand:       strings.TrimSpace(input.Brand),
		Product:     strings.TrimSpace(input.Product),
		Description: strings.TrimSpace(input.Description),
		Cost:        input.Cost,
		Price:       input.Price,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewDuplicateError("Item with UPC " + upc + " already exists")
		}
		return nil, err
	}
	return item, nil
}

// CreateBasic adds an item through the quick add flow: UPC, display
// name, and selling price only.
func (s *CatalogService) CreateBasic(ctx context.Context, upc, name string, price int64) (*entity.Item, error) {
	upc = strings.TrimSpace(upc)
	name = strings.TrimSpace(name)

	if len(upc) < 8 {
		return nil, apperror.NewValidationError("UPC should be at least 8 digits")
	}
	if len(name) < 2 {
		return nil, apperror.NewValidationError("Item name should be at least 2 characters")
	}
	if price <= 0 {
		return nil, apperror.NewValidationError("Price must be positive")
	}

	return s.UpsertFull(ctx, &UpsertItemInput{
		UPC:     upc,
		Product: name,
		Price:   price,
	}, InsertOnly)
}

// UpdatePrice changes the selling price of the item the code resolves
// to, leaving every other field untouched.
func (s *CatalogService) UpdatePrice(ctx context.Context, code string, price int64) (*entity.Item, error) {
	if price <= 0 {
		return nil, apperror.NewValidationError("Price must be positive")
	}

	item, err := s.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	updated, err := s.itemRepo.UpdatePrice(ctx, item.UPC, price)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.NewNotFoundError("Item")
	}

	item.Price = price
	return item, nil
}

// ListItems lists catalog items ordered by product name
func (s *CatalogService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// ClearAll wipes the catalog. Administrative reset, not part of any
// normal flow.
func (s *CatalogService) ClearAll(ctx context.Context) error {
	return s.itemRepo.DeleteAll(ctx)
}
