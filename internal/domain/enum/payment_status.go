package enum

import "database/sql/driver"

// PaymentStatus represents how much of a sale has been paid.
// Values are stored as-is in the sales table.
type PaymentStatus string

const (
	PaymentStatusPayLater  PaymentStatus = "pay_later"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusFullyPaid PaymentStatus = "fully_paid"
)

// Valid reports whether s is one of the known statuses
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPayLater, PaymentStatusPartial, PaymentStatusFullyPaid:
		return true
	}
	return false
}

// Label returns the human-readable form used on receipts
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPayLater:
		return "Pay Later"
	case PaymentStatusPartial:
		return "Partial"
	case PaymentStatusFullyPaid:
		return "Fully Paid"
	}
	return string(s)
}

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPayLater
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(v)
	}
	return nil
}
