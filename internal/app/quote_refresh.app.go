package app

import (
	"context"
	"fmt"

	"stockpulse/internal/logger"
	"stockpulse/internal/repository"
	l1_service "stockpulse/internal/service/l1"
	"stockpulse/internal/session"

	"github.com/robfig/cron/v3"
)

// QuoteRefreshApp polls the quote provider for every watched symbol on
// a fixed cadence and warms the in-process quote cache. A refresh that
// overlaps a newer one is fine; quotes are ephemeral and last writer
// wins.
type QuoteRefreshApp struct {
	WatchlistRepository repository.WatchlistRepository
	QuoteService        l1_service.QuoteService
	SessionState        *session.Observable

	cron        *cron.Cron
	unsubscribe func()
}

const refreshSchedule = "@every 45s"

func NewQuoteRefreshApp(
	watchlistRepository repository.WatchlistRepository,
	quoteService l1_service.QuoteService,
	sessionState *session.Observable,
) *QuoteRefreshApp {
	return &QuoteRefreshApp{
		WatchlistRepository: watchlistRepository,
		QuoteService:        quoteService,
		SessionState:        sessionState,
	}
}

func (a *QuoteRefreshApp) Start() error {
	if a.cron != nil {
		return fmt.Errorf("quote refresh already started")
	}

	a.cron = cron.New()
	_, err := a.cron.AddFunc(refreshSchedule, func() {
		// no point polling the provider while nobody is signed in
		if a.SessionState != nil && !a.SessionState.Get().Active() {
			return
		}
		if err := a.RefreshAll(context.Background()); err != nil {
			logger.Error(err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule quote refresh: %w", err)
	}
	a.cron.Start()

	if a.SessionState != nil {
		// Warm the cache as soon as someone signs in instead of
		// waiting out the polling interval.
		a.unsubscribe = a.SessionState.Subscribe(func(s session.State) {
			if !s.Active() {
				return
			}
			go func() {
				if err := a.RefreshAll(context.Background()); err != nil {
					logger.Error(err)
				}
			}()
		})
	}

	return nil
}

func (a *QuoteRefreshApp) Stop() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.cron != nil {
		a.cron.Stop()
		a.cron = nil
	}
}

func (a *QuoteRefreshApp) RefreshAll(ctx context.Context) error {
	symbols, err := a.WatchlistRepository.DistinctSymbols()
	if err != nil {
		return fmt.Errorf("failed to load watched symbols: %w", err)
	}

	misses := 0
	for _, symbol := range symbols {
		if quote := a.QuoteService.GetQuote(ctx, symbol); quote == nil {
			misses++
		}
	}
	if misses > 0 {
		logger.Warn("quote refresh: no quote for %d of %d watched symbols", misses, len(symbols))
	}

	return nil
}
