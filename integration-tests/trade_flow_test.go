package integration_tests

import (
	"testing"

	"stockpulse/internal/db/models/postgres/public/model"
	"stockpulse/internal/db/models/postgres/public/table"
	"stockpulse/internal/domain"
	"stockpulse/internal/repository"
	l1_service "stockpulse/internal/service/l1"
	"stockpulse/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestTradeFlow(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)

	portfolioRepository := repository.NewPortfolioRepository(db)
	portfolioStockRepository := repository.NewPortfolioStockRepository(db)
	transactionRepository := repository.NewTransactionRepository(db)
	tradeService := l1_service.NewTradeService(
		portfolioRepository,
		portfolioStockRepository,
		transactionRepository,
	)

	t.Run("buy then sell round trip", func(t *testing.T) {
		tx, err := db.Begin()
		require.NoError(t, err)
		defer tx.Rollback()

		userID := uuid.New()

		created, err := portfolioRepository.GetOrCreate(tx, userID)
		require.NoError(t, err)
		require.Equal(t, "150.00", created.CashBalance.StringFixed(2))

		buyResult, err := tradeService.Buy(tx, l1_service.TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: 1,
			Price:    decimal.NewFromInt(100),
		})
		require.NoError(t, err)
		require.Equal(t, "50.00", buyResult.CashBalance.StringFixed(2))

		position, err := portfolioStockRepository.Get(tx, userID, "AAPL")
		require.NoError(t, err)
		require.NotNil(t, position)

		expected := &model.PortfolioStock{
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     1,
			AveragePrice: decimal.NewFromInt(100),
		}
		diff := cmp.Diff(expected, position,
			decimalComparer,
			cmpopts.IgnoreFields(model.PortfolioStock{}, "PortfolioStockID", "CreatedAt", "ModifiedAt"),
		)
		require.Empty(t, diff)

		sellResult, err := tradeService.Sell(tx, l1_service.TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: 1,
			Price:    decimal.NewFromInt(120),
		})
		require.NoError(t, err)
		require.Equal(t, "170.00", sellResult.CashBalance.StringFixed(2))

		position, err = portfolioStockRepository.Get(tx, userID, "AAPL")
		require.NoError(t, err)
		require.Nil(t, position)
	})

	t.Run("rejected buy leaves the ledger untouched", func(t *testing.T) {
		tx, err := db.Begin()
		require.NoError(t, err)
		defer tx.Rollback()

		userID := uuid.New()

		_, err = portfolioRepository.GetOrCreate(tx, userID)
		require.NoError(t, err)

		_, err = tradeService.Buy(tx, l1_service.TradeInput{
			UserID:   userID,
			Symbol:   "AAPL",
			Quantity: 10,
			Price:    decimal.NewFromFloat(178.45),
		})

		var fundsErr domain.InsufficientFundsError
		require.ErrorAs(t, err, &fundsErr)

		portfolio, err := portfolioRepository.GetOrCreate(tx, userID)
		require.NoError(t, err)
		require.Equal(t, "150.00", portfolio.CashBalance.StringFixed(2))

		position, err := portfolioStockRepository.Get(tx, userID, "AAPL")
		require.NoError(t, err)
		require.Nil(t, position)
	})
}

func TestWatchlistUniqueness(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)

	watchlistRepository := repository.NewWatchlistRepository(db)
	userID := uuid.New()

	t.Cleanup(func() {
		query := table.Watchlist.DELETE().
			WHERE(table.Watchlist.UserID.EQ(postgres.UUID(userID)))
		_, _ = query.Exec(db)
	})

	first, err := watchlistRepository.Add(userID, "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", first.Symbol)

	_, err = watchlistRepository.Add(userID, "AAPL")
	require.ErrorIs(t, err, domain.ErrAlreadyWatched)

	entries, err := watchlistRepository.List(userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
