package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestApplyBuy(t *testing.T) {
	t.Run("debits cash on a simple buy", func(t *testing.T) {
		p := NewPortfolio()

		txn, err := p.ApplyBuy("AAPL", 1, decimal.NewFromFloat(100.00))
		require.NoError(t, err)

		require.Equal(t, "50", p.Cash.String())
		require.Equal(t, TradeSideBuy, txn.Side)
		require.Equal(t, "100", txn.TotalAmount.String())

		position := p.Positions["AAPL"]
		require.NotNil(t, position)
		require.Equal(t, int64(1), position.Quantity)
		require.Equal(t, "100", position.AverageCost.String())
	})

	t.Run("rejects a buy the cash balance cannot cover", func(t *testing.T) {
		p := NewPortfolio()

		_, err := p.ApplyBuy("AAPL", 10, decimal.NewFromFloat(178.45))

		var fundsErr InsufficientFundsError
		require.ErrorAs(t, err, &fundsErr)
		require.Equal(t, "1784.50", fundsErr.Required.StringFixed(2))
		require.Equal(t, "150.00", fundsErr.Available.StringFixed(2))
		require.Equal(t, "1634.50", fundsErr.Shortfall().StringFixed(2))

		// rejected order must leave the ledger untouched
		require.Equal(t, "150.00", p.Cash.StringFixed(2))
		require.Empty(t, p.Positions)
	})

	t.Run("folds a second fill into a weighted average cost", func(t *testing.T) {
		p := &Portfolio{
			Cash:      decimal.NewFromInt(1000),
			Positions: map[string]*Position{},
		}

		_, err := p.ApplyBuy("MSFT", 2, decimal.NewFromInt(100))
		require.NoError(t, err)
		_, err = p.ApplyBuy("MSFT", 1, decimal.NewFromInt(130))
		require.NoError(t, err)

		position := p.Positions["MSFT"]
		require.Equal(t, int64(3), position.Quantity)
		// (2*100 + 1*130) / 3
		require.Equal(t, "110.00", position.AverageCost.StringFixed(2))
		require.Equal(t, "670.00", p.Cash.StringFixed(2))
	})

	t.Run("rejects non-positive quantity and price", func(t *testing.T) {
		p := NewPortfolio()

		_, err := p.ApplyBuy("AAPL", 0, decimal.NewFromInt(10))
		require.ErrorContains(t, err, "quantity must be a positive number of shares")

		_, err = p.ApplyBuy("AAPL", -3, decimal.NewFromInt(10))
		require.ErrorContains(t, err, "quantity must be a positive number of shares")

		_, err = p.ApplyBuy("AAPL", 1, decimal.Zero)
		require.ErrorContains(t, err, "price must be positive")
	})
}

func TestApplySell(t *testing.T) {
	t.Run("credits cash and keeps the remaining position", func(t *testing.T) {
		p := &Portfolio{
			Cash: decimal.NewFromInt(50),
			Positions: map[string]*Position{
				"AAPL": {Symbol: "AAPL", Quantity: 3, AverageCost: decimal.NewFromInt(100)},
			},
		}

		txn, err := p.ApplySell("AAPL", 2, decimal.NewFromInt(120))
		require.NoError(t, err)

		require.Equal(t, "290", p.Cash.String())
		require.Equal(t, TradeSideSell, txn.Side)
		require.Equal(t, "240", txn.TotalAmount.String())

		position := p.Positions["AAPL"]
		require.Equal(t, int64(1), position.Quantity)
		// selling never moves the cost basis
		require.Equal(t, "100", position.AverageCost.String())
	})

	t.Run("removes the position when the last share is sold", func(t *testing.T) {
		p := &Portfolio{
			Cash: decimal.Zero,
			Positions: map[string]*Position{
				"TSLA": {Symbol: "TSLA", Quantity: 2, AverageCost: decimal.NewFromInt(200)},
			},
		}

		_, err := p.ApplySell("TSLA", 2, decimal.NewFromInt(210))
		require.NoError(t, err)

		require.NotContains(t, p.Positions, "TSLA")
		require.Equal(t, "420", p.Cash.String())
	})

	t.Run("rejects selling more shares than are owned", func(t *testing.T) {
		p := &Portfolio{
			Cash: decimal.Zero,
			Positions: map[string]*Position{
				"AAPL": {Symbol: "AAPL", Quantity: 1, AverageCost: decimal.NewFromInt(100)},
			},
		}

		_, err := p.ApplySell("AAPL", 5, decimal.NewFromInt(100))

		var sharesErr InsufficientSharesError
		require.ErrorAs(t, err, &sharesErr)
		require.Equal(t, int64(5), sharesErr.Requested)
		require.Equal(t, int64(1), sharesErr.Owned)
		require.Equal(t, "AAPL", sharesErr.Symbol)

		require.Equal(t, int64(1), p.Positions["AAPL"].Quantity)
		require.True(t, p.Cash.IsZero())
	})

	t.Run("rejects selling a symbol that was never bought", func(t *testing.T) {
		p := NewPortfolio()

		_, err := p.ApplySell("GOOGL", 1, decimal.NewFromInt(100))

		var sharesErr InsufficientSharesError
		require.ErrorAs(t, err, &sharesErr)
		require.Equal(t, int64(0), sharesErr.Owned)
	})
}

func TestTotalValue(t *testing.T) {
	p := &Portfolio{
		Cash: decimal.NewFromFloat(50.00),
		Positions: map[string]*Position{
			"AAPL": {Symbol: "AAPL", Quantity: 2, AverageCost: decimal.NewFromFloat(30.00)},
			"MSFT": {Symbol: "MSFT", Quantity: 1, AverageCost: decimal.NewFromFloat(10.00)},
		},
	}

	require.Equal(t, "120.00", p.TotalValue().StringFixed(2))
}

func TestDeepCopy(t *testing.T) {
	p := NewPortfolio()
	_, err := p.ApplyBuy("AAPL", 1, decimal.NewFromInt(100))
	require.NoError(t, err)

	copied := p.DeepCopy()
	copied.Positions["AAPL"].Quantity = 99
	copied.Cash = decimal.Zero

	require.Equal(t, int64(1), p.Positions["AAPL"].Quantity)
	require.Equal(t, "50", p.Cash.String())
}

func TestErrAlreadyWatchedIsSentinel(t *testing.T) {
	require.True(t, errors.Is(ErrAlreadyWatched, ErrAlreadyWatched))
	require.EqualError(t, ErrAlreadyWatched, "symbol is already on the watchlist")
}
