package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillpoint/tillpoint-api/internal/presentation/http/dto/response"
)

// toCents converts a decimal dollar amount from a request body to the
// cent representation the ledger stores. Going through decimal avoids
// float rounding artifacts like 19.99 becoming 1998.
func toCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// parseIDParam reads and parses a UUID path parameter, writing the
// error response itself on failure
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
