package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type transactionResponse struct {
	Symbol      string `json:"symbol"`
	Side        string `json:"side"`
	Quantity    int64  `json:"quantity"`
	Price       string `json:"price"`
	TotalAmount string `json:"totalAmount"`
	CreatedAt   string `json:"createdAt"`
}

const defaultTransactionLimit = 20

func (m ApiHandler) transactions(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	limit := int64(defaultTransactionLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			returnErrorJsonCode(fmt.Errorf("invalid limit %q", raw), c, 400)
			return
		}
		limit = parsed
	}

	records, err := m.TransactionRepository.List(userAccountID, limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]transactionResponse, 0, len(records))
	for _, record := range records {
		out = append(out, transactionResponse{
			Symbol:      record.Symbol,
			Side:        record.Side.String(),
			Quantity:    record.Quantity,
			Price:       record.Price.StringFixed(2),
			TotalAmount: record.TotalAmount.StringFixed(2),
			CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	c.JSON(200, gin.H{"transactions": out})
}
