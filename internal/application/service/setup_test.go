package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	infraRepo "github.com/tillpoint/tillpoint-api/internal/infrastructure/repository"
)

// fixture wires the full service stack over an in-memory database so
// tests exercise real SQL, including transaction rollback.
type fixture struct {
	db       *gorm.DB
	catalog  *CatalogService
	customer *CustomerService
	sale     *SaleService
	payment  *PaymentService
	imports  *ImportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// the in-memory database exists per connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Customer{},
		&entity.Item{},
		&entity.Sale{},
		&entity.SaleLineItem{},
	))

	itemRepo := infraRepo.NewItemRepository(db)
	customerRepo := infraRepo.NewCustomerRepository(db)
	saleRepo := infraRepo.NewSaleRepository(db)
	tx := infraRepo.NewTxRunner(db)

	catalog := NewCatalogService(itemRepo)

	return &fixture{
		db:       db,
		catalog:  catalog,
		customer: NewCustomerService(customerRepo, saleRepo),
		sale:     NewSaleService(saleRepo, customerRepo, catalog, tx),
		payment:  NewPaymentService(saleRepo, customerRepo, tx),
		imports:  NewImportService(catalog),
	}
}

func (f *fixture) seedItem(t *testing.T, upc, product string, price int64) *entity.Item {
	t.Helper()
	item, err := f.catalog.UpsertFull(context.Background(), &UpsertItemInput{
		UPC:     upc,
		Product: product,
		Price:   price,
	}, InsertOnly)
	require.NoError(t, err)
	return item
}

func (f *fixture) seedCustomer(t *testing.T, phone, name string) *entity.Customer {
	t.Helper()
	customer, err := f.customer.Create(context.Background(), phone, name)
	require.NoError(t, err)
	return customer
}

// seedSale writes a sale directly so tests control the sale date
func (f *fixture) seedSale(t *testing.T, customer *entity.Customer, total int64, date time.Time) *entity.Sale {
	t.Helper()
	sale := &entity.Sale{
		CustomerID:    customer.ID,
		TotalAmount:   total,
		PaymentStatus: enum.PaymentStatusPayLater,
		SaleDate:      date,
		Lines: []entity.SaleLineItem{
			{ItemName: "Seeded item", Quantity: 1, UnitPrice: total, DiscountedPrice: total},
		},
	}
	require.NoError(t, f.db.Create(sale).Error)
	return sale
}
