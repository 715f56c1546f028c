package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stockpulse/internal/domain"
	"stockpulse/internal/logger"
)

const DefaultFinnhubEndpoint = "https://finnhub.io/api/v1"

// FinnhubRepository is the quote gateway. The Fetch* methods normalize
// upstream responses into domain types: a malformed quote (non-numeric
// price or explicit error field) comes back as nil with no error, so
// callers never see a bad quote. The Raw* methods pass upstream JSON
// through untouched for the proxy endpoint.
type FinnhubRepository interface {
	FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error)
	SearchSymbols(ctx context.Context, query string) ([]domain.SearchResult, error)
	FetchProfile(ctx context.Context, symbol string) (*domain.Profile, error)

	RawQuote(ctx context.Context, symbol string) ([]byte, error)
	RawSearch(ctx context.Context, query string) ([]byte, error)
	RawProfile(ctx context.Context, symbol string) ([]byte, error)
}

type finnhubRepositoryHandler struct {
	HttpClient *http.Client
	ApiKey     string
	Endpoint   string
}

func NewFinnhubRepository(apiKey string, endpoint string) FinnhubRepository {
	if endpoint == "" {
		endpoint = DefaultFinnhubEndpoint
	}
	return finnhubRepositoryHandler{
		HttpClient: &http.Client{Timeout: 10 * time.Second},
		ApiKey:     apiKey,
		Endpoint:   endpoint,
	}
}

func (h finnhubRepositoryHandler) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("token", h.ApiKey)
	requestUrl := fmt.Sprintf("%s%s?%s", h.Endpoint, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, err
	}
	response, err := h.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach quote provider: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote provider returned status code %d", response.StatusCode)
	}

	return body, nil
}

func (h finnhubRepositoryHandler) RawQuote(ctx context.Context, symbol string) ([]byte, error) {
	return h.get(ctx, "/quote", url.Values{"symbol": {symbol}})
}

func (h finnhubRepositoryHandler) RawSearch(ctx context.Context, query string) ([]byte, error) {
	return h.get(ctx, "/search", url.Values{"q": {query}})
}

func (h finnhubRepositoryHandler) RawProfile(ctx context.Context, symbol string) ([]byte, error) {
	return h.get(ctx, "/stock/profile2", url.Values{"symbol": {symbol}})
}

func (h finnhubRepositoryHandler) FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error) {
	body, err := h.RawQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// c must be a number for the quote to be usable; anything else is
	// treated the same as no quote at all.
	var raw struct {
		C     *float64 `json:"c"`
		D     float64  `json:"d"`
		Dp    float64  `json:"dp"`
		H     float64  `json:"h"`
		L     float64  `json:"l"`
		O     float64  `json:"o"`
		Pc    float64  `json:"pc"`
		T     int64    `json:"t"`
		Error *string  `json:"error"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		logger.Warn("discarding malformed quote for %s: %v", symbol, err)
		return nil, nil
	}
	if raw.Error != nil {
		logger.Warn("quote provider returned error for %s: %s", symbol, *raw.Error)
		return nil, nil
	}
	if raw.C == nil {
		logger.Warn("quote for %s is missing a current price", symbol)
		return nil, nil
	}

	return &domain.Quote{
		Price:         *raw.C,
		Change:        raw.D,
		PercentChange: raw.Dp,
		High:          raw.H,
		Low:           raw.L,
		Open:          raw.O,
		PreviousClose: raw.Pc,
		Timestamp:     raw.T,
	}, nil
}

func (h finnhubRepositoryHandler) SearchSymbols(ctx context.Context, query string) ([]domain.SearchResult, error) {
	body, err := h.RawSearch(ctx, query)
	if err != nil {
		return nil, err
	}

	var raw struct {
		Result []domain.SearchResult `json:"result"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	return raw.Result, nil
}

func (h finnhubRepositoryHandler) FetchProfile(ctx context.Context, symbol string) (*domain.Profile, error) {
	body, err := h.RawProfile(ctx, symbol)
	if err != nil {
		return nil, err
	}

	profile := domain.Profile{}
	if err := json.Unmarshal(body, &profile); err != nil {
		logger.Warn("discarding malformed profile for %s: %v", symbol, err)
		return nil, nil
	}
	if profile.Ticker == "" && profile.Name == "" {
		return nil, nil
	}

	return &profile, nil
}
