package api

import (
	"errors"
	"fmt"
	"strings"

	"stockpulse/internal/domain"
	l1_service "stockpulse/internal/service/l1"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (m ApiHandler) sell(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody tradeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	symbol := strings.ToUpper(requestBody.Symbol)
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	quote := m.QuoteService.GetQuote(c.Request.Context(), symbol)
	if quote == nil || quote.Price <= 0 {
		returnErrorJsonCode(fmt.Errorf("unable to fetch a price for %s", symbol), c, 400)
		return
	}
	price := decimal.NewFromFloat(quote.Price)

	tx, err := m.Db.Begin()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	result, err := m.TradeService.Sell(tx, l1_service.TradeInput{
		UserID:   userAccountID,
		Symbol:   symbol,
		Quantity: requestBody.Quantity,
		Price:    price,
	})
	if err != nil {
		var insufficientShares domain.InsufficientSharesError
		if errors.As(err, &insufficientShares) {
			c.AbortWithStatusJSON(400, gin.H{
				"error": insufficientShares.Error(),
				"owned": insufficientShares.Owned,
			})
			return
		}
		returnErrorJson(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit transaction: %w", err), c)
		return
	}

	c.JSON(200, tradeResponse{
		Symbol:      symbol,
		Side:        string(domain.TradeSideSell),
		Quantity:    requestBody.Quantity,
		Price:       price.StringFixed(2),
		TotalAmount: result.Transaction.TotalAmount.StringFixed(2),
		CashBalance: result.CashBalance.StringFixed(2),
	})
}
