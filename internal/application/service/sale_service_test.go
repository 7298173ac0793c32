package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

func TestBuildDraftResolvesCatalogLines(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{
		{UPC: "12345678905", Quantity: 2},
		{Name: "Bag of ice", Quantity: 1, UnitPrice: 500, AdHoc: true},
	})
	require.NoError(t, err)
	require.Len(t, draft.Lines, 2)
	assert.Equal(t, "Cola", draft.Lines[0].Name)
	assert.Equal(t, "012345678905", draft.Lines[0].UPC)
	assert.Equal(t, entity.LineAdHoc, draft.Lines[1].Kind)
	assert.Equal(t, int64(2*199+500), draft.Total())
}

func TestBuildDraftDefaultsQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{{UPC: "012345678905"}})
	require.NoError(t, err)
	assert.Equal(t, 1, draft.Lines[0].Quantity)
}

func TestBuildDraftUnknownCode(t *testing.T) {
	f := newFixture(t)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	_, err := f.sale.BuildDraft(context.Background(), customer.ID, []DraftLineInput{
		{UPC: "000000000000"},
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFinalizeFullyPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{
		{UPC: "012345678905", Quantity: 3},
	})
	require.NoError(t, err)

	// caller's paid amount is ignored for fully paid sales
	sale, err := f.sale.Finalize(ctx, draft, enum.PaymentStatusFullyPaid, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(597), sale.TotalAmount)
	assert.Equal(t, int64(597), sale.PaidAmount)
	assert.Equal(t, enum.PaymentStatusFullyPaid, sale.PaymentStatus)
	assert.Zero(t, sale.Outstanding())
	require.Len(t, sale.Lines, 1)
	assert.Equal(t, "Cola", sale.Lines[0].ItemName)
}

func TestFinalizePayLater(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{{UPC: "012345678905"}})
	require.NoError(t, err)

	sale, err := f.sale.Finalize(ctx, draft, enum.PaymentStatusPayLater, 100)
	require.NoError(t, err)
	assert.Zero(t, sale.PaidAmount)
	assert.Equal(t, int64(199), sale.Outstanding())

	balance, err := f.payment.Balance(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(199), balance)
}

func TestFinalizePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{
		{UPC: "012345678905", Quantity: 2},
	})
	require.NoError(t, err)

	sale, err := f.sale.Finalize(ctx, draft, enum.PaymentStatusPartial, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), sale.PaidAmount)
	assert.Equal(t, enum.PaymentStatusPartial, sale.PaymentStatus)
	assert.Equal(t, int64(298), sale.Outstanding())
}

func TestFinalizePartialCoveringTotalBecomesFullyPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{{UPC: "012345678905"}})
	require.NoError(t, err)

	sale, err := f.sale.Finalize(ctx, draft, enum.PaymentStatusPartial, 199)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusFullyPaid, sale.PaymentStatus)
}

func TestFinalizePartialExceedingTotalRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{{UPC: "012345678905"}})
	require.NoError(t, err)

	_, err = f.sale.Finalize(ctx, draft, enum.PaymentStatusPartial, 1000)
	require.Error(t, err)

	// nothing reached the ledger
	sales, err := f.customer.SalesHistory(ctx, customer.ID)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestFinalizeValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	_, err := f.sale.Finalize(ctx, nil, enum.PaymentStatusFullyPaid, 0)
	assert.Error(t, err)

	_, err = f.sale.Finalize(ctx, entity.NewSaleDraft(customer.ID), enum.PaymentStatusFullyPaid, 0)
	assert.Error(t, err)

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{{UPC: "012345678905"}})
	require.NoError(t, err)

	_, err = f.sale.Finalize(ctx, draft, enum.PaymentStatus("weird"), 0)
	assert.Error(t, err)

	// unknown customer
	ghost := entity.NewSaleDraft(uuid.New())
	require.NoError(t, ghost.AddAdHocLine("Thing", 1, 100))
	_, err = f.sale.Finalize(ctx, ghost, enum.PaymentStatusFullyPaid, 0)
	assert.True(t, apperror.IsNotFound(err))
}

func TestGetSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)
	customer := f.seedCustomer(t, "555-0101", "Maria Lopez")

	draft, err := f.sale.BuildDraft(ctx, customer.ID, []DraftLineInput{{UPC: "012345678905"}})
	require.NoError(t, err)
	created, err := f.sale.Finalize(ctx, draft, enum.PaymentStatusFullyPaid, 0)
	require.NoError(t, err)

	sale, err := f.sale.GetSale(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, sale.ID)
	require.Len(t, sale.Lines, 1)

	_, err = f.sale.GetSale(ctx, uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
