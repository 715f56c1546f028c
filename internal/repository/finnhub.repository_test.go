package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFinnhubServer(t *testing.T, path string, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, path, r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("token"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a well-formed quote", func(t *testing.T) {
		server := newFinnhubServer(t, "/quote", 200,
			`{"c":178.45,"d":1.20,"dp":0.68,"h":179.10,"l":176.90,"o":177.25,"pc":177.25,"t":1709923200}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		quote, err := handler.FetchQuote(ctx, "AAPL")
		require.NoError(t, err)
		require.NotNil(t, quote)
		require.Equal(t, 178.45, quote.Price)
		require.Equal(t, 1.20, quote.Change)
		require.Equal(t, 177.25, quote.PreviousClose)
		require.Equal(t, int64(1709923200), quote.Timestamp)
	})

	t.Run("treats a non-numeric price as no quote", func(t *testing.T) {
		server := newFinnhubServer(t, "/quote", 200, `{"c":"not a number"}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		quote, err := handler.FetchQuote(ctx, "AAPL")
		require.NoError(t, err)
		require.Nil(t, quote)
	})

	t.Run("treats an explicit provider error as no quote", func(t *testing.T) {
		server := newFinnhubServer(t, "/quote", 200, `{"error":"You don't have access to this resource."}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		quote, err := handler.FetchQuote(ctx, "AAPL")
		require.NoError(t, err)
		require.Nil(t, quote)
	})

	t.Run("treats a missing price as no quote", func(t *testing.T) {
		server := newFinnhubServer(t, "/quote", 200, `{"d":1.20,"dp":0.68}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		quote, err := handler.FetchQuote(ctx, "AAPL")
		require.NoError(t, err)
		require.Nil(t, quote)
	})

	t.Run("surfaces a non-200 response as an error", func(t *testing.T) {
		server := newFinnhubServer(t, "/quote", 429, `{"error":"rate limited"}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		_, err := handler.FetchQuote(ctx, "AAPL")
		require.ErrorContains(t, err, "429")
	})

	t.Run("surfaces a network failure as an error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()
		handler := NewFinnhubRepository("test-key", server.URL)

		_, err := handler.FetchQuote(ctx, "AAPL")
		require.ErrorContains(t, err, "failed to reach quote provider")
	})
}

func TestSearchSymbols(t *testing.T) {
	t.Run("parses search results", func(t *testing.T) {
		server := newFinnhubServer(t, "/search", 200,
			`{"count":1,"result":[{"description":"APPLE INC","displaySymbol":"AAPL","symbol":"AAPL","type":"Common Stock"}]}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		results, err := handler.SearchSymbols(context.Background(), "apple")
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "AAPL", results[0].Symbol)
		require.Equal(t, "APPLE INC", results[0].Description)
	})
}

func TestFetchProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a profile", func(t *testing.T) {
		server := newFinnhubServer(t, "/stock/profile2", 200,
			`{"name":"Apple Inc","ticker":"AAPL","exchange":"NASDAQ","marketCapitalization":2800000,"shareOutstanding":15400}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		profile, err := handler.FetchProfile(ctx, "AAPL")
		require.NoError(t, err)
		require.NotNil(t, profile)
		require.Equal(t, "Apple Inc", profile.Name)
		require.Equal(t, "NASDAQ", profile.Exchange)
	})

	t.Run("treats an empty profile as absent", func(t *testing.T) {
		server := newFinnhubServer(t, "/stock/profile2", 200, `{}`)
		handler := NewFinnhubRepository("test-key", server.URL)

		profile, err := handler.FetchProfile(ctx, "UNKNOWN")
		require.NoError(t, err)
		require.Nil(t, profile)
	})
}

func TestRawQuotePassthrough(t *testing.T) {
	body := `{"c":178.45,"weird_extra_field":true}`
	server := newFinnhubServer(t, "/quote", 200, body)
	handler := NewFinnhubRepository("test-key", server.URL)

	raw, err := handler.RawQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.JSONEq(t, body, string(raw))
}
