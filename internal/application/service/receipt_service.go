package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/tillpoint/tillpoint-api/internal/config"
	"github.com/tillpoint/tillpoint-api/internal/domain/entity"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
	"github.com/tillpoint/tillpoint-api/pkg/printer"
	"github.com/tillpoint/tillpoint-api/pkg/receipt"
)

// ReceiptService composes printable receipts from sale data and sends
// them to the configured printer
type ReceiptService struct {
	saleRepo repository.SaleRepository
	printer  printer.Printer
	cfg      config.ReceiptConfig
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(saleRepo repository.SaleRepository, p printer.Printer, cfg config.ReceiptConfig) *ReceiptService {
	return &ReceiptService{saleRepo: saleRepo, printer: p, cfg: cfg}
}

// BuildReceipt loads a sale with its lines and composes the receipt
// value object. Printed amounts come straight from the ledger; the
// display tax rate never feeds back into stored totals.
func (s *ReceiptService) BuildReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithLines(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.cfg.StoreName,
			Address:   s.cfg.Address,
		},
		SaleNo:        strings.ToUpper(sale.ID.String()[:8]),
		Date:          sale.SaleDate.Format("2006-01-02 15:04"),
		Total:         float64(sale.TotalAmount) / 100,
		Paid:          float64(sale.PaidAmount) / 100,
		Balance:       float64(sale.Outstanding()) / 100,
		PaymentStatus: sale.PaymentStatus.Label(),
	}
	if sale.Customer != nil {
		r.Customer = sale.Customer.Name
		r.Phone = sale.Customer.Phone
	}

	for _, line := range sale.Lines {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      line.ItemName,
			UPC:       line.UPC,
			IsAdHoc:   line.IsAdHoc,
			Quantity:  line.Quantity,
			UnitPrice: float64(line.UnitPrice) / 100,
			Total:     float64(line.Total()) / 100,
		})
	}

	return r, nil
}

// FormatOptions controls receipt rendering
type FormatOptions struct {
	Width   int
	TaxRate float64 // display only
}

// FormatReceipt renders a receipt as fixed-width text. The output is
// plain text so it works on any line printer and stays testable.
func FormatReceipt(r *entity.Receipt, opts FormatOptions) string {
	width := opts.Width
	if width <= 0 {
		width = receipt.DefaultWidth
	}

	d := receipt.NewDocument(width)

	d.Center(r.Header.StoreName)
	if r.Header.Address != "" {
		d.Center(r.Header.Address)
	}
	d.Separator('=')
	d.TwoColumn("Sale #"+r.SaleNo, r.Date)
	if r.Customer != "" {
		d.Line("Customer: " + r.Customer)
	}
	if r.Phone != "" {
		d.Line("Phone: " + r.Phone)
	}
	d.Separator('-')

	for _, item := range r.Items {
		d.Line(item.Name)
		if item.IsAdHoc {
			d.Line("  XT ITEM")
		} else if item.UPC != "" {
			d.Line("  UPC: " + item.UPC)
		}
		d.TwoColumn(
			fmt.Sprintf("  %d x $%.2f", item.Quantity, item.UnitPrice),
			fmt.Sprintf("$%.2f", item.Total),
		)
	}

	d.Separator('-')
	d.TwoColumn("TOTAL", fmt.Sprintf("$%.2f", r.Total))
	if opts.TaxRate > 0 {
		d.TwoColumn(fmt.Sprintf("  incl. tax (%.2f%%)", opts.TaxRate),
			fmt.Sprintf("$%.2f", r.Total*opts.TaxRate/(100+opts.TaxRate)))
	}
	d.TwoColumn("PAID", fmt.Sprintf("$%.2f", r.Paid))
	d.TwoColumn("BALANCE", fmt.Sprintf("$%.2f", r.Balance))
	d.Blank()
	d.Center(r.PaymentStatus)
	d.Separator('=')
	d.Center("Thank you!")
	d.Blank()

	return d.String()
}

// PrintSale formats a sale's receipt and sends it to the printer
func (s *ReceiptService) PrintSale(ctx context.Context, saleID uuid.UUID) error {
	r, err := s.BuildReceipt(ctx, saleID)
	if err != nil {
		return err
	}

	text := FormatReceipt(r, FormatOptions{Width: s.cfg.Width, TaxRate: s.cfg.TaxRate})
	if err := s.printer.Print([]byte(text)); err != nil {
		log.Error().Err(err).Str("sale_id", saleID.String()).Msg("receipt print failed")
		return apperror.NewBadRequestError("Printer unavailable: " + err.Error())
	}

	log.Info().Str("sale_id", saleID.String()).Msg("receipt printed")
	return nil
}

// PrinterStatus reports whether the configured printer is reachable
func (s *ReceiptService) PrinterStatus() bool {
	return s.printer.IsConnected()
}

// TestPrint sends a short alignment page to the printer
func (s *ReceiptService) TestPrint() error {
	d := receipt.NewDocument(s.cfg.Width)
	d.Center(s.cfg.StoreName)
	d.Separator('=')
	d.Center("TEST PAGE")
	d.TwoColumn("Left column", "Right column")
	d.Separator('=')
	d.Blank()

	if err := s.printer.Print([]byte(d.String())); err != nil {
		return apperror.NewBadRequestError("Printer unavailable: " + err.Error())
	}
	return nil
}
