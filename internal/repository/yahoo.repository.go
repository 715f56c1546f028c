package repository

import (
	"stockpulse/internal/domain"

	"github.com/piquette/finance-go/quote"
)

// YahooRepository is the fallback quote source, used when the primary
// provider has no usable quote for a symbol.
type YahooRepository interface {
	FetchQuote(symbol string) (*domain.Quote, error)
}

type yahooRepositoryHandler struct{}

func NewYahooRepository() YahooRepository {
	return yahooRepositoryHandler{}
}

func (h yahooRepositoryHandler) FetchQuote(symbol string) (*domain.Quote, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, err
	}
	if q == nil || q.RegularMarketPrice == 0 {
		return nil, nil
	}

	return &domain.Quote{
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		PercentChange: q.RegularMarketChangePercent,
		High:          q.RegularMarketDayHigh,
		Low:           q.RegularMarketDayLow,
		Open:          q.RegularMarketOpen,
		PreviousClose: q.RegularMarketPreviousClose,
		Timestamp:     int64(q.RegularMarketTime),
	}, nil
}
