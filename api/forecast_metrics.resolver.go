package api

import (
	"math/rand"
	"strings"
	"time"

	"stockpulse/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) forecastMetrics(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	prediction := domain.PredictionFor(symbol)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	series := m.ForecastService.GenerateSeries(prediction, time.Now().UTC(), rng)

	metrics, err := m.MetricsService.Summarize(series, prediction)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"symbol":  symbol,
		"metrics": metrics,
	})
}
