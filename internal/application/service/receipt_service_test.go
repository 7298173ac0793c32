package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	infraRepo "github.com/tillpoint/tillpoint-api/internal/infrastructure/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/printer"
)

func newReceiptFixture(t *testing.T) (*fixture, *ReceiptService) {
	t.Helper()
	f := newFixture(t)
	svc := NewReceiptService(
		infraRepo.NewSaleRepository(f.db),
		printer.NewNullPrinter(),
		config.ReceiptConfig{StoreName: "Corner Market", Address: "12 Main St", Width: 48},
	)
	return f, svc
}

func (f *fixture) finalizedSale(t *testing.T) *entity.Sale {
	t.Helper()
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{
		{UPC: "012345678905", Quantity: 2},
		{Name: "Bag of ice", Quantity: 1, UnitPrice: 500, AdHoc: true},
	})
	require.NoError(t, err)

	sale, err := f.sale.Finalize(ctx, draft, enum.PaymentStatusPartial, 300)
	require.NoError(t, err)
	return sale
}

func TestBuildReceipt(t *testing.T) {
	f, svc := newReceiptFixture(t)
	sale := f.finalizedSale(t)

	r, err := svc.BuildReceipt(context.Background(), sale.ID)
	require.NoError(t, err)

	assert.Equal(t, "Corner Market", r.Header.StoreName)
	assert.Equal(t, strings.ToUpper(sale.ID.String()[:8]), r.SaleNo)
	assert.Equal(t, "Maria Lopez", r.Customer)
	assert.Equal(t, "555-0101", r.Phone)
	assert.Equal(t, "Partial", r.PaymentStatus)
	assert.InDelta(t, 8.98, r.Total, 0.001)
	assert.InDelta(t, 3.00, r.Paid, 0.001)
	assert.InDelta(t, 5.98, r.Balance, 0.001)

	require.Len(t, r.Items, 2)
	assert.Equal(t, "Cola", r.Items[0].Name)
	assert.Equal(t, "012345678905", r.Items[0].UPC)
	assert.False(t, r.Items[0].IsAdHoc)
	assert.True(t, r.Items[1].IsAdHoc)
	assert.Empty(t, r.Items[1].UPC)
}

func TestBuildReceiptUnknownSale(t *testing.T) {
	_, svc := newReceiptFixture(t)

	_, err := svc.BuildReceipt(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFormatReceipt(t *testing.T) {
	r := &entity.Receipt{
		Header:   entity.ReceiptHeader{StoreName: "Corner Market", Address: "12 Main St"},
		SaleNo:   "AB12CD34",
		Date:     time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC).Format("2006-01-02 15:04"),
		Customer: "Maria Lopez",
		Phone:    "555-0101",
		Items: []entity.ReceiptItem{
			{Name: "Cola", UPC: "012345678905", Quantity: 2, UnitPrice: 1.99, Total: 3.98},
			{Name: "Bag of ice", IsAdHoc: true, Quantity: 1, UnitPrice: 5.00, Total: 5.00},
		},
		Total:         8.98,
		Paid:          3.00,
		Balance:       5.98,
		PaymentStatus: "Partial",
	}

	text := FormatReceipt(r, FormatOptions{Width: 48})
	lines := strings.Split(text, "\n")

	// every line fits the paper
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 48, "line too wide: %q", line)
	}

	assert.Contains(t, text, "Corner Market")
	assert.Contains(t, text, "Sale #AB12CD34")
	assert.Contains(t, text, "2025-06-01 14:30")
	assert.Contains(t, text, "Customer: Maria Lopez")
	assert.Contains(t, text, "UPC: 012345678905")
	assert.Contains(t, text, "XT ITEM")
	assert.Contains(t, text, "$8.98")
	assert.Contains(t, text, "Partial")
	assert.Contains(t, text, "Thank you!")

	// totals sit flush against the right edge
	for _, line := range lines {
		if strings.HasPrefix(line, "TOTAL") {
			assert.Len(t, line, 48)
			assert.True(t, strings.HasSuffix(line, "$8.98"))
		}
	}
}

func TestFormatReceiptOmitsTaxLineByDefault(t *testing.T) {
	r := &entity.Receipt{Header: entity.ReceiptHeader{StoreName: "Corner Market"}, Total: 10}

	assert.NotContains(t, FormatReceipt(r, FormatOptions{}), "tax")
	assert.Contains(t, FormatReceipt(r, FormatOptions{TaxRate: 8.25}), "incl. tax (8.25%)")
}

func TestPrintSale(t *testing.T) {
	f, svc := newReceiptFixture(t)
	sale := f.finalizedSale(t)

	require.NoError(t, svc.PrintSale(context.Background(), sale.ID))
	assert.False(t, svc.PrinterStatus())
	require.NoError(t, svc.TestPrint())
}
