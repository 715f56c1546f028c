package api

import (
	"github.com/gin-gonic/gin"
)

type recommendedStockResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
	Priority int32  `json:"priority"`
}

func (m ApiHandler) recommendedStocks(c *gin.Context) {
	stocks, err := m.RecommendedStockRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]recommendedStockResponse, 0, len(stocks))
	for _, stock := range stocks {
		out = append(out, recommendedStockResponse{
			Symbol:   stock.Symbol,
			Name:     stock.Name,
			Reason:   stock.Reason,
			Priority: stock.Priority,
		})
	}

	c.JSON(200, gin.H{"recommended": out})
}
