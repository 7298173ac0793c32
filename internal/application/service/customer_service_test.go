package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/pagination"
)

func TestCustomerCreateAndFindByPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created := f.seedCustomer(t, "555-0101", "Maria Lopez")

	found, err := f.customer.FindByPhone(ctx, "555-0101")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Maria Lopez", found.Name)
}

func TestCustomerCreateRejectsDuplicatePhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedCustomer(t, "555-0101", "Maria Lopez")

	_, err := f.customer.Create(ctx, "555-0101", "Someone Else")
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicate(err))
}

func TestCustomerCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.customer.Create(ctx, "", "Maria Lopez")
	assert.Error(t, err)

	_, err = f.customer.Create(ctx, "555-0101", "  ")
	assert.Error(t, err)
}

func TestCustomerFindByPhoneMiss(t *testing.T) {
	f := newFixture(t)

	_, err := f.customer.FindByPhone(context.Background(), "555-9999")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCustomerBalance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")
	f.seedSale(t, customer, 10000, time.Now())
	f.seedSale(t, customer, 5000, time.Now())

	balance, err := f.customer.Balance(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), balance)

	_, err = f.customer.Balance(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCustomerSalesHistoryNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")
	old := f.seedSale(t, customer, 10000, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC))
	recent := f.seedSale(t, customer, 5000, time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC))

	sales, err := f.customer.SalesHistory(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, recent.ID, sales[0].ID)
	assert.Equal(t, old.ID, sales[1].ID)
}

func TestListCustomersSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedCustomer(t, "555-0101", "Maria Lopez")
	f.seedCustomer(t, "555-0202", "James Chen")

	result, err := f.customer.ListCustomers(ctx, &pagination.PaginationParams{}, "chen")
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "James Chen", result.Items[0].Name)
}
