package api

import (
	"math/rand"
	"strings"
	"time"

	"stockpulse/internal/domain"

	"github.com/gin-gonic/gin"
)

type forecastResponse struct {
	Symbol     string               `json:"symbol"`
	Prediction domain.Prediction    `json:"prediction"`
	Series     []domain.SeriesPoint `json:"series"`
}

func (m ApiHandler) forecast(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	prediction := domain.PredictionFor(symbol)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	series := m.ForecastService.GenerateSeries(prediction, time.Now().UTC(), rng)

	c.JSON(200, forecastResponse{
		Symbol:     symbol,
		Prediction: prediction,
		Series:     series,
	})
}
