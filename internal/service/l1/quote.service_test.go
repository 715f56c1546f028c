package l1_service

import (
	"context"
	"fmt"
	"testing"

	"stockpulse/internal/domain"
	mock_repository "stockpulse/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("caches the primary provider's quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhubRepository := mock_repository.NewMockFinnhubRepository(ctrl)
		yahooRepository := mock_repository.NewMockYahooRepository(ctrl)
		cache := domain.NewQuoteCache()

		handler := quoteServiceHandler{
			FinnhubRepository: finnhubRepository,
			YahooRepository:   yahooRepository,
			Cache:             cache,
		}

		finnhubRepository.EXPECT().
			FetchQuote(ctx, "AAPL").
			Return(&domain.Quote{Price: 178.45, PreviousClose: 177.00}, nil)

		quote := handler.GetQuote(ctx, "AAPL")
		require.NotNil(t, quote)
		require.Equal(t, 178.45, quote.Price)

		cached, ok := cache.Get("AAPL")
		require.True(t, ok)
		require.Equal(t, 178.45, cached.Price)
	})

	t.Run("falls back to the secondary provider on an absent quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhubRepository := mock_repository.NewMockFinnhubRepository(ctrl)
		yahooRepository := mock_repository.NewMockYahooRepository(ctrl)

		handler := quoteServiceHandler{
			FinnhubRepository: finnhubRepository,
			YahooRepository:   yahooRepository,
			Cache:             domain.NewQuoteCache(),
		}

		// absent, not an error: the provider returned something unusable
		finnhubRepository.EXPECT().
			FetchQuote(ctx, "MSFT").
			Return(nil, nil)
		yahooRepository.EXPECT().
			FetchQuote("MSFT").
			Return(&domain.Quote{Price: 378.91}, nil)

		quote := handler.GetQuote(ctx, "MSFT")
		require.NotNil(t, quote)
		require.Equal(t, 378.91, quote.Price)
	})

	t.Run("degrades to nil when both providers fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhubRepository := mock_repository.NewMockFinnhubRepository(ctrl)
		yahooRepository := mock_repository.NewMockYahooRepository(ctrl)
		cache := domain.NewQuoteCache()

		handler := quoteServiceHandler{
			FinnhubRepository: finnhubRepository,
			YahooRepository:   yahooRepository,
			Cache:             cache,
		}

		finnhubRepository.EXPECT().
			FetchQuote(ctx, "TSLA").
			Return(nil, fmt.Errorf("upstream unreachable"))
		yahooRepository.EXPECT().
			FetchQuote("TSLA").
			Return(nil, fmt.Errorf("also unreachable"))

		require.Nil(t, handler.GetQuote(ctx, "TSLA"))

		_, ok := cache.Get("TSLA")
		require.False(t, ok)
	})

	t.Run("works without a fallback provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhubRepository := mock_repository.NewMockFinnhubRepository(ctrl)

		handler := quoteServiceHandler{
			FinnhubRepository: finnhubRepository,
			Cache:             domain.NewQuoteCache(),
		}

		finnhubRepository.EXPECT().
			FetchQuote(ctx, "AMZN").
			Return(nil, nil)

		require.Nil(t, handler.GetQuote(ctx, "AMZN"))
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("passes results through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhubRepository := mock_repository.NewMockFinnhubRepository(ctrl)

		handler := quoteServiceHandler{FinnhubRepository: finnhubRepository}

		finnhubRepository.EXPECT().
			SearchSymbols(ctx, "apple").
			Return([]domain.SearchResult{{Symbol: "AAPL", Description: "APPLE INC"}}, nil)

		results := handler.Search(ctx, "apple")
		require.Len(t, results, 1)
		require.Equal(t, "AAPL", results[0].Symbol)
	})

	t.Run("degrades a failed search to an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhubRepository := mock_repository.NewMockFinnhubRepository(ctrl)

		handler := quoteServiceHandler{FinnhubRepository: finnhubRepository}

		finnhubRepository.EXPECT().
			SearchSymbols(ctx, "apple").
			Return(nil, fmt.Errorf("rate limited"))

		results := handler.Search(ctx, "apple")
		require.NotNil(t, results)
		require.Empty(t, results)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("degrades a failed profile fetch to nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhubRepository := mock_repository.NewMockFinnhubRepository(ctrl)

		handler := quoteServiceHandler{FinnhubRepository: finnhubRepository}

		finnhubRepository.EXPECT().
			FetchProfile(ctx, "AAPL").
			Return(nil, fmt.Errorf("rate limited"))

		require.Nil(t, handler.GetProfile(ctx, "AAPL"))
	})
}
