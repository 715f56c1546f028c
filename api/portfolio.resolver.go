package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type portfolioPosition struct {
	Symbol       string   `json:"symbol"`
	Quantity     int64    `json:"quantity"`
	AveragePrice string   `json:"averagePrice"`
	CostBasis    string   `json:"costBasis"`
	LastPrice    *float64 `json:"lastPrice,omitempty"`
}

type portfolioResponse struct {
	CashBalance string              `json:"cashBalance"`
	TotalValue  string              `json:"totalValue"`
	Positions   []portfolioPosition `json:"positions"`
}

func (m ApiHandler) portfolio(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	portfolio, err := m.PortfolioRepository.GetOrCreate(nil, userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	stocks, err := m.PortfolioStockRepository.List(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	positions := make([]portfolioPosition, 0, len(stocks))
	totalValue := portfolio.CashBalance
	for _, stock := range stocks {
		costBasis := stock.AveragePrice.Mul(decimal.NewFromInt(stock.Quantity))
		totalValue = totalValue.Add(costBasis)

		position := portfolioPosition{
			Symbol:       stock.Symbol,
			Quantity:     stock.Quantity,
			AveragePrice: stock.AveragePrice.StringFixed(2),
			CostBasis:    costBasis.StringFixed(2),
		}
		if quote, ok := m.QuoteCache.Get(stock.Symbol); ok {
			price := quote.Price
			position.LastPrice = &price
		}
		positions = append(positions, position)
	}

	c.JSON(200, portfolioResponse{
		CashBalance: portfolio.CashBalance.StringFixed(2),
		TotalValue:  totalValue.StringFixed(2),
		Positions:   positions,
	})
}
