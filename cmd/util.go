package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"stockpulse/api"
	"stockpulse/internal/app"
	"stockpulse/internal/calculator"
	"stockpulse/internal/domain"
	"stockpulse/internal/repository"
	l1_service "stockpulse/internal/service/l1"
	"stockpulse/internal/session"
	"stockpulse/internal/util"

	_ "github.com/lib/pq"
)

type Dependencies struct {
	ApiHandler      *api.ApiHandler
	QuoteRefreshApp *app.QuoteRefreshApp
}

func CloseDependencies(deps *Dependencies) {
	deps.QuoteRefreshApp.Stop()
	if err := deps.ApiHandler.Db.Close(); err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*Dependencies, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	quoteCache := domain.NewQuoteCache()
	sessionState := session.NewObservable()

	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	portfolioStockRepository := repository.NewPortfolioStockRepository(dbConn)
	transactionRepository := repository.NewTransactionRepository(dbConn)
	watchlistRepository := repository.NewWatchlistRepository(dbConn)
	recommendedStockRepository := repository.NewRecommendedStockRepository(dbConn)
	finnhubRepository := repository.NewFinnhubRepository(secrets.FinnhubApiKey, repository.DefaultFinnhubEndpoint)
	yahooRepository := repository.NewYahooRepository()

	quoteService := l1_service.NewQuoteService(finnhubRepository, yahooRepository, quoteCache)
	tradeService := l1_service.NewTradeService(
		portfolioRepository,
		portfolioStockRepository,
		transactionRepository,
	)

	quoteRefreshApp := app.NewQuoteRefreshApp(watchlistRepository, quoteService, sessionState)

	apiHandler := &api.ApiHandler{
		Db:                         dbConn,
		ForecastService:            calculator.NewForecastService(),
		MetricsService:             calculator.NewMetricsService(),
		QuoteService:               quoteService,
		TradeService:               tradeService,
		FinnhubRepository:          finnhubRepository,
		PortfolioRepository:        portfolioRepository,
		PortfolioStockRepository:   portfolioStockRepository,
		TransactionRepository:      transactionRepository,
		WatchlistRepository:        watchlistRepository,
		RecommendedStockRepository: recommendedStockRepository,
		QuoteCache:                 quoteCache,
		SessionState:               sessionState,
		JwtDecodeToken:             secrets.JwtDecodeToken,
	}

	return &Dependencies{
		ApiHandler:      apiHandler,
		QuoteRefreshApp: quoteRefreshApp,
	}, nil
}
