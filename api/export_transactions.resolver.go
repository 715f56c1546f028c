package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type transactionCsvRow struct {
	Symbol      string `csv:"symbol"`
	Side        string `csv:"side"`
	Quantity    int64  `csv:"quantity"`
	Price       string `csv:"price"`
	TotalAmount string `csv:"total_amount"`
	CreatedAt   string `csv:"created_at"`
}

// exportTransactions streams the full transaction history as CSV.
func (m ApiHandler) exportTransactions(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	records, err := m.TransactionRepository.List(userAccountID, 0)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rows := make([]transactionCsvRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, transactionCsvRow{
			Symbol:      record.Symbol,
			Side:        record.Side.String(),
			Quantity:    record.Quantity,
			Price:       record.Price.StringFixed(2),
			TotalAmount: record.TotalAmount.StringFixed(2),
			CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to render csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(200, "text/csv", []byte(out))
}
