package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"stockpulse/internal/domain"

	"github.com/gin-gonic/gin"
)

type watchlistEntryResponse struct {
	Symbol  string        `json:"symbol"`
	AddedAt string        `json:"addedAt"`
	Quote   *domain.Quote `json:"quote,omitempty"`
}

type addToWatchlistRequest struct {
	Symbol string `json:"symbol"`
}

func (m ApiHandler) getWatchlist(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	entries, err := m.WatchlistRepository.List(userAccountID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]watchlistEntryResponse, 0, len(entries))
	for _, entry := range entries {
		item := watchlistEntryResponse{
			Symbol:  entry.Symbol,
			AddedAt: entry.AddedAt.UTC().Format(time.RFC3339),
		}
		if quote, ok := m.QuoteCache.Get(entry.Symbol); ok {
			q := quote
			item.Quote = &q
		}
		out = append(out, item)
	}

	c.JSON(200, gin.H{"watchlist": out})
}

func (m ApiHandler) addToWatchlist(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody addToWatchlistRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	symbol := strings.ToUpper(strings.TrimSpace(requestBody.Symbol))
	if symbol == "" {
		returnErrorJsonCode(fmt.Errorf("symbol is required"), c, 400)
		return
	}

	entry, err := m.WatchlistRepository.Add(userAccountID, symbol)
	if errors.Is(err, domain.ErrAlreadyWatched) {
		c.AbortWithStatusJSON(409, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, watchlistEntryResponse{
		Symbol:  entry.Symbol,
		AddedAt: entry.AddedAt.UTC().Format(time.RFC3339),
	})
}

func (m ApiHandler) removeFromWatchlist(c *gin.Context) {
	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	symbol := strings.ToUpper(c.Param("symbol"))
	if err := m.WatchlistRepository.Remove(userAccountID, symbol); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}
