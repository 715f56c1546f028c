package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrAlreadyWatched distinguishes a duplicate watchlist insert from a
// generic persistence failure.
var ErrAlreadyWatched = errors.New("symbol is already on the watchlist")

type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds: need $%s but only have $%s",
		e.Required.StringFixed(2), e.Available.StringFixed(2),
	)
}

func (e InsufficientFundsError) Shortfall() decimal.Decimal {
	return e.Required.Sub(e.Available)
}

type InsufficientSharesError struct {
	Symbol    string
	Requested int64
	Owned     int64
}

func (e InsufficientSharesError) Error() string {
	return fmt.Sprintf(
		"insufficient shares: requested %d of %s but only own %d",
		e.Requested, e.Symbol, e.Owned,
	)
}
