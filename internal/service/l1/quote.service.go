package l1_service

import (
	"context"

	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
	"stockpulse/internal/repository"
)

// QuoteService degrades every provider failure to an absent result.
// Callers (resolvers, the refresh poller) never see an error from a
// bad quote; they only see nil.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) *domain.Quote
	Search(ctx context.Context, query string) []domain.SearchResult
	GetProfile(ctx context.Context, symbol string) *domain.Profile
}

type quoteServiceHandler struct {
	FinnhubRepository repository.FinnhubRepository
	YahooRepository   repository.YahooRepository
	Cache             *domain.QuoteCache
}

func NewQuoteService(
	finnhubRepository repository.FinnhubRepository,
	yahooRepository repository.YahooRepository,
	cache *domain.QuoteCache,
) QuoteService {
	return quoteServiceHandler{
		FinnhubRepository: finnhubRepository,
		YahooRepository:   yahooRepository,
		Cache:             cache,
	}
}

func (h quoteServiceHandler) GetQuote(ctx context.Context, symbol string) *domain.Quote {
	quote, err := h.FinnhubRepository.FetchQuote(ctx, symbol)
	if err != nil {
		logger.Warn("quote fetch failed for %s: %v", symbol, err)
	}

	if quote == nil && h.YahooRepository != nil {
		fallback, err := h.YahooRepository.FetchQuote(symbol)
		if err != nil {
			logger.Warn("fallback quote fetch failed for %s: %v", symbol, err)
		} else {
			quote = fallback
		}
	}

	if quote != nil && h.Cache != nil {
		h.Cache.Put(symbol, *quote)
	}

	return quote
}

func (h quoteServiceHandler) Search(ctx context.Context, query string) []domain.SearchResult {
	results, err := h.FinnhubRepository.SearchSymbols(ctx, query)
	if err != nil {
		logger.Warn("symbol search failed for %q: %v", query, err)
		return []domain.SearchResult{}
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results
}

func (h quoteServiceHandler) GetProfile(ctx context.Context, symbol string) *domain.Profile {
	profile, err := h.FinnhubRepository.FetchProfile(ctx, symbol)
	if err != nil {
		logger.Warn("profile fetch failed for %s: %v", symbol, err)
		return nil
	}
	return profile
}
