package api

import (
	"database/sql"
	"fmt"

	"stockpulse/internal/calculator"
	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/internal/repository"
	l1_service "stockpulse/internal/service/l1"
	"stockpulse/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db *sql.DB

	ForecastService calculator.ForecastService
	MetricsService  calculator.MetricsService
	QuoteService    l1_service.QuoteService
	TradeService    l1_service.TradeService

	FinnhubRepository          repository.FinnhubRepository
	PortfolioRepository        repository.PortfolioRepository
	PortfolioStockRepository   repository.PortfolioStockRepository
	TransactionRepository      repository.TransactionRepository
	WatchlistRepository        repository.WatchlistRepository
	RecommendedStockRepository repository.RecommendedStockRepository

	QuoteCache   *domain.QuoteCache
	SessionState *session.Observable

	JwtDecodeToken string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
	}))

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockpulse"})
	})

	// public: the quote proxy and the synthetic forecast
	router.GET("/stockData", m.stockData)
	router.GET("/forecast/:symbol", m.forecast)
	router.GET("/forecast/:symbol/metrics", m.forecastMetrics)
	router.GET("/recommended", m.recommendedStocks)

	authorized := router.Group("/", m.authMiddleware)
	authorized.POST("/buy", m.buy)
	authorized.POST("/sell", m.sell)
	authorized.GET("/portfolio", m.portfolio)
	authorized.GET("/transactions", m.transactions)
	authorized.GET("/transactions/export", m.exportTransactions)
	authorized.GET("/watchlist", m.getWatchlist)
	authorized.POST("/watchlist", m.addToWatchlist)
	authorized.DELETE("/watchlist/:symbol", m.removeFromWatchlist)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
