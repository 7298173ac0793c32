package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusValid(t *testing.T) {
	assert.True(t, PaymentStatusPayLater.Valid())
	assert.True(t, PaymentStatusPartial.Valid())
	assert.True(t, PaymentStatusFullyPaid.Valid())
	assert.False(t, PaymentStatus("refunded").Valid())
	assert.False(t, PaymentStatus("").Valid())
}

func TestPaymentStatusLabel(t *testing.T) {
	assert.Equal(t, "Pay Later", PaymentStatusPayLater.Label())
	assert.Equal(t, "Partial", PaymentStatusPartial.Label())
	assert.Equal(t, "Fully Paid", PaymentStatusFullyPaid.Label())
}
