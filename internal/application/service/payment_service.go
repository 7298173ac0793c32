package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/tillpoint/tillpoint-api/internal/domain/enum"
	"github.com/tillpoint/tillpoint-api/internal/domain/repository"
	"github.com/tillpoint/tillpoint-api/pkg/apperror"
)

// PaymentService distributes customer payments across outstanding sales
type PaymentService struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	tx           repository.TxRunner
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	tx repository.TxRunner,
) *PaymentService {
	return &PaymentService{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		tx:           tx,
	}
}

// SaleAllocation records how much of a payment landed on one sale
type SaleAllocation struct {
	SaleID        uuid.UUID          `json:"sale_id"`
	Allocated     int64              `json:"-"` // cents
	PaidAmount    int64              `json:"-"` // cents
	TotalAmount   int64              `json:"-"` // cents
	PaymentStatus enum.PaymentStatus `json:"payment_status"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a SaleAllocation) MarshalJSON() ([]byte, error) {
	type Alias SaleAllocation
	return json.Marshal(&struct {
		Alias
		Allocated   float64 `json:"allocated"`
		PaidAmount  float64 `json:"paid_amount"`
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(a),
		Allocated:   float64(a.Allocated) / 100,
		PaidAmount:  float64(a.PaidAmount) / 100,
		TotalAmount: float64(a.TotalAmount) / 100,
	})
}

// AllocationResult summarizes a completed payment allocation
type AllocationResult struct {
	CustomerID  uuid.UUID        `json:"customer_id"`
	Amount      int64            `json:"-"` // cents
	Allocations []SaleAllocation `json:"allocations"`
	NewBalance  int64            `json:"-"` // cents
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r AllocationResult) MarshalJSON() ([]byte, error) {
	type Alias AllocationResult
	return json.Marshal(&struct {
		Alias
		Amount     float64 `json:"amount"`
		NewBalance float64 `json:"new_balance"`
	}{
		Alias:      Alias(r),
		Amount:     float64(r.Amount) / 100,
		NewBalance: float64(r.NewBalance) / 100,
	})
}

// ApplyPayment distributes amount (cents) across the customer's
// outstanding sales, oldest debt first. Each sale absorbs at most its
// outstanding remainder; a sale whose paid amount reaches its total
// flips to fully paid, anything in between to partial.
//
// The balance check and the whole walk run inside one transaction:
// either every touched sale commits or none does. A rejected payment
// (zero, negative, or more than the balance) changes nothing.
func (s *PaymentService) ApplyPayment(ctx context.Context, customerID uuid.UUID, amount int64) (*AllocationResult, error) {
	if amount <= 0 {
		return nil, apperror.NewAllocationError("Payment amount must be positive")
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	result := &AllocationResult{CustomerID: customerID, Amount: amount}

	err = s.tx.InTx(ctx, func(txCtx context.Context) error {
		balance, err := s.saleRepo.OutstandingTotal(txCtx, customerID)
		if err != nil {
			return err
		}
		if amount > balance {
			return apperror.NewAllocationError("Payment amount exceeds outstanding balance")
		}

		sales, err := s.saleRepo.ListOutstandingByCustomer(txCtx, customerID)
		if err != nil {
			return err
		}

		remaining := amount
		for i := range sales {
			if remaining <= 0 {
				break
			}
			sale := &sales[i]

			outstanding := sale.Outstanding()
			allocated := remaining
			if allocated > outstanding {
				allocated = outstanding
			}

			sale.PaidAmount += allocated
			if sale.PaidAmount >= sale.TotalAmount {
				sale.PaymentStatus = enum.PaymentStatusFullyPaid
			} else {
				sale.PaymentStatus = enum.PaymentStatusPartial
			}

			if err := s.saleRepo.Update(txCtx, sale); err != nil {
				return err
			}

			result.Allocations = append(result.Allocations, SaleAllocation{
				SaleID:        sale.ID,
				Allocated:     allocated,
				PaidAmount:    sale.PaidAmount,
				TotalAmount:   sale.TotalAmount,
				PaymentStatus: sale.PaymentStatus,
			})
			remaining -= allocated
		}

		result.NewBalance = balance - amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Balance returns the customer's current outstanding balance in cents
func (s *PaymentService) Balance(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return s.saleRepo.OutstandingTotal(ctx, customerID)
}
