package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// importRowCeiling is advisory only. Files beyond it still import but
// get a warning log, since the row loop holds no memory proportional
// to file size.
const importRowCeiling = 10000

// expected column order in catalog export files
const (
	colUPC = iota
	colBrand
	colProduct
	colDescription
	colCost
	colPrice
	importColumns
)

// RowError describes a single rejected row during bulk import
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarizes a completed catalog import
type ImportResult struct {
	Imported   int        `json:"imported"`
	Updated    int        `json:"updated"`
	Duplicates int        `json:"duplicates"`
	Errors     []RowError `json:"errors"`
}

// ImportService loads catalog items in bulk from exported CSV files
type ImportService struct {
	catalog *CatalogService
}

// NewImportService creates a new import service instance
func NewImportService(catalog *CatalogService) *ImportService {
	return &ImportService{catalog: catalog}
}

// ImportCSV reads an exported catalog file and upserts each data row.
// The export format carries a blank first row and a header second row;
// the csv reader drops the blank row, so after parsing the first record
// is the header and data follows it. Row failures are collected per row
// rather than aborting the whole file.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader, mode UpsertMode) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Failed to parse CSV: %v", err))
	}

	if len(rows) < 2 {
		return nil, apperror.NewBadRequestError("CSV file has no data rows")
	}

	dataRows := rows[1:]
	if len(dataRows) > importRowCeiling {
		log.Warn().Int("rows", len(dataRows)).Int("ceiling", importRowCeiling).
			Msg("catalog import exceeds advisory row ceiling")
	}

	result := &ImportResult{Errors: []RowError{}}

	for i, row := range dataRows {
		rowNum := i + 3

		if isBlankRow(row) {
			continue
		}
		if len(row) < importColumns {
			result.Errors = append(result.Errors, RowError{
				Row:     rowNum,
				Message: fmt.Sprintf("expected %d columns, got %d", importColumns, len(row)),
			})
			continue
		}

		cost, err := parseMoney(row[colCost])
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: "invalid cost: " + row[colCost]})
			continue
		}
		price, err := parseMoney(row[colPrice])
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: "invalid price: " + row[colPrice]})
			continue
		}

		input := &UpsertItemInput{
			UPC:         strings.TrimSpace(row[colUPC]),
			Brand:       strings.TrimSpace(row[colBrand]),
			Product:     strings.TrimSpace(row[colProduct]),
			Description: strings.TrimSpace(row[colDescription]),
			Cost:        cost,
			Price:       price,
		}

		existed, err := s.catalog.Exists(ctx, input.UPC)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		if _, err := s.catalog.UpsertFull(ctx, input, mode); err != nil {
			if apperror.IsDuplicate(err) {
				result.Duplicates++
				continue
			}
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		if existed {
			result.Updated++
		} else {
			result.Imported++
		}
	}

	log.Info().
		Int("imported", result.Imported).
		Int("updated", result.Updated).
		Int("duplicates", result.Duplicates).
		Int("errors", len(result.Errors)).
		Msg("catalog import finished")

	return result, nil
}

func isBlankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// parseMoney converts a decimal money string to cents. Blank fields
// count as zero, matching the export format for items with no cost.
func parseMoney(raw string) (int64, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	if raw == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
