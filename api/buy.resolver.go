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

type tradeRequest struct {
	Symbol   string `json:"symbol"`
	Quantity int64  `json:"quantity"`
}

type tradeResponse struct {
	Symbol      string  `json:"symbol"`
	Side        string  `json:"side"`
	Quantity    int64   `json:"quantity"`
	Price       string  `json:"price"`
	TotalAmount string  `json:"totalAmount"`
	CashBalance string  `json:"cashBalance"`
	Shortfall   *string `json:"shortfall,omitempty"`
}

func (m ApiHandler) buy(c *gin.Context) {
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

	result, err := m.TradeService.Buy(tx, l1_service.TradeInput{
		UserID:   userAccountID,
		Symbol:   symbol,
		Quantity: requestBody.Quantity,
		Price:    price,
	})
	if err != nil {
		var insufficientFunds domain.InsufficientFundsError
		if errors.As(err, &insufficientFunds) {
			shortfall := insufficientFunds.Shortfall().StringFixed(2)
			c.AbortWithStatusJSON(400, gin.H{
				"error":     insufficientFunds.Error(),
				"shortfall": shortfall,
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
		Side:        string(domain.TradeSideBuy),
		Quantity:    requestBody.Quantity,
		Price:       price.StringFixed(2),
		TotalAmount: result.Transaction.TotalAmount.StringFixed(2),
		CashBalance: result.CashBalance.StringFixed(2),
	})
}
