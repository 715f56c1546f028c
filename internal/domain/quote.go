package domain

import "sync"

// Quote is an ephemeral snapshot from the upstream provider. It is
// never persisted.
type Quote struct {
	Price         float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

type SearchResult struct {
	Description   string `json:"description"`
	DisplaySymbol string `json:"displaySymbol"`
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
}

type Profile struct {
	Name                 string  `json:"name"`
	Ticker               string  `json:"ticker"`
	Exchange             string  `json:"exchange"`
	MarketCapitalization float64 `json:"marketCapitalization"`
	ShareOutstanding     float64 `json:"shareOutstanding"`
	Logo                 string  `json:"logo"`
}

// QuoteCache holds the most recent quote per symbol. Writers may race
// with in-flight refreshes; last writer wins, which is acceptable for
// ephemeral quotes.
type QuoteCache struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

func NewQuoteCache() *QuoteCache {
	return &QuoteCache{quotes: map[string]Quote{}}
}

func (c *QuoteCache) Put(symbol string, quote Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[symbol] = quote
}

func (c *QuoteCache) Get(symbol string) (Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	quote, ok := c.quotes[symbol]
	return quote, ok
}
