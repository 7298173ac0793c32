package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// export files carry a blank first row and a header second row
const importHeader = "\nUPC,Brand,Product,Description,Cost,Price\n"

func TestImportCSVInsertOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	csvData := importHeader +
		"12345678905,Fizz,Cola 2L,Soda,1.20,1.99\n" +
		"042100005264,Crunch,Chips,Salted,0.80,2.99\n"

	result, err := f.imports.ImportCSV(ctx, strings.NewReader(csvData), InsertOnly)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Zero(t, result.Duplicates)
	assert.Empty(t, result.Errors)

	// 11-digit codes were normalized on the way in
	item, err := f.catalog.Lookup(ctx, "012345678905")
	require.NoError(t, err)
	assert.Equal(t, "Cola 2L", item.Product)
	assert.Equal(t, int64(120), item.Cost)
	assert.Equal(t, int64(199), item.Price)
}

func TestImportCSVCountsDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)

	csvData := importHeader + "12345678905,Fizz,Cola 2L,Soda,1.20,2.49\n"

	result, err := f.imports.ImportCSV(ctx, strings.NewReader(csvData), InsertOnly)
	require.NoError(t, err)
	assert.Zero(t, result.Imported)
	assert.Equal(t, 1, result.Duplicates)

	// the existing row kept its price
	item, err := f.catalog.Lookup(ctx, "012345678905")
	require.NoError(t, err)
	assert.Equal(t, int64(199), item.Price)
}

func TestImportCSVUpdateMode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seedItem(t, "012345678905", "Cola", 199)

	csvData := importHeader +
		"12345678905,Fizz,Cola 2L,Soda,1.20,2.49\n" +
		"042100005264,Crunch,Chips,Salted,0.80,2.99\n"

	result, err := f.imports.ImportCSV(ctx, strings.NewReader(csvData), UpdateOrInsert)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Updated)
	assert.Zero(t, result.Duplicates)

	item, err := f.catalog.Lookup(ctx, "012345678905")
	require.NoError(t, err)
	assert.Equal(t, "Cola 2L", item.Product)
	assert.Equal(t, int64(249), item.Price)
}

func TestImportCSVCollectsRowErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	csvData := importHeader +
		"12345678905,Fizz,Cola 2L,Soda,1.20,1.99\n" +
		"042100005264,Crunch,Chips,Salted,not-a-number,2.99\n" +
		"052100005265,Crunch,Pretzels,Salted,0.80,0\n"

	result, err := f.imports.ImportCSV(ctx, strings.NewReader(csvData), InsertOnly)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 4, result.Errors[0].Row)
	assert.Equal(t, 5, result.Errors[1].Row)
}

func TestImportCSVSkipsBlankRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	csvData := importHeader +
		"12345678905,Fizz,Cola 2L,Soda,1.20,1.99\n" +
		",,,,,\n"

	result, err := f.imports.ImportCSV(ctx, strings.NewReader(csvData), InsertOnly)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Empty(t, result.Errors)
}

func TestImportCSVBlankCostDefaultsToZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	csvData := importHeader + "12345678905,Fizz,Cola 2L,Soda,,1.99\n"

	result, err := f.imports.ImportCSV(ctx, strings.NewReader(csvData), InsertOnly)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	item, err := f.catalog.Lookup(ctx, "012345678905")
	require.NoError(t, err)
	assert.Zero(t, item.Cost)
}

func TestImportCSVRejectsEmptyFile(t *testing.T) {
	f := newFixture(t)

	_, err := f.imports.ImportCSV(context.Background(), strings.NewReader(""), InsertOnly)
	assert.Error(t, err)

	_, err = f.imports.ImportCSV(context.Background(), strings.NewReader("\nUPC,Brand\n"), InsertOnly)
	assert.Error(t, err)
}
