package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockpulse/internal/db/models/postgres/public/model"
	"stockpulse/internal/db/models/postgres/public/table"
	"stockpulse/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

type WatchlistRepository interface {
	Add(userID uuid.UUID, symbol string) (*model.Watchlist, error)
	Remove(userID uuid.UUID, symbol string) error
	List(userID uuid.UUID) ([]model.Watchlist, error)
	DistinctSymbols() ([]string, error)
}

type watchlistRepositoryHandler struct {
	Db *sql.DB
}

func NewWatchlistRepository(db *sql.DB) WatchlistRepository {
	return watchlistRepositoryHandler{Db: db}
}

// Add inserts a watchlist row. A duplicate (user, symbol) pair maps
// the unique-constraint violation to domain.ErrAlreadyWatched so the
// caller can surface it distinctly from a generic failure.
func (h watchlistRepositoryHandler) Add(userID uuid.UUID, symbol string) (*model.Watchlist, error) {
	t := table.Watchlist

	in := model.Watchlist{
		UserID:  userID,
		Symbol:  symbol,
		AddedAt: time.Now().UTC(),
	}
	query := t.INSERT(t.MutableColumns).
		MODEL(in).
		RETURNING(t.AllColumns)

	out := model.Watchlist{}
	err := query.Query(h.Db, &out)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, domain.ErrAlreadyWatched
		}
		return nil, fmt.Errorf("failed to insert watchlist entry: %w", err)
	}

	return &out, nil
}

func (h watchlistRepositoryHandler) Remove(userID uuid.UUID, symbol string) error {
	t := table.Watchlist

	query := t.DELETE().WHERE(
		t.UserID.EQ(postgres.UUID(userID)).
			AND(t.Symbol.EQ(postgres.String(symbol))),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to remove watchlist entry: %w", err)
	}

	return nil
}

func (h watchlistRepositoryHandler) List(userID uuid.UUID) ([]model.Watchlist, error) {
	t := table.Watchlist

	query := t.SELECT(t.AllColumns).
		WHERE(t.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(t.AddedAt.ASC())

	out := []model.Watchlist{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list watchlist: %w", err)
	}

	return out, nil
}

// DistinctSymbols returns every symbol watched by any user, for the
// quote refresh poller.
func (h watchlistRepositoryHandler) DistinctSymbols() ([]string, error) {
	t := table.Watchlist

	query := postgres.SELECT(t.Symbol).DISTINCT().
		FROM(t).
		ORDER_BY(t.Symbol.ASC())

	out := []model.Watchlist{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list watched symbols: %w", err)
	}

	symbols := make([]string, 0, len(out))
	for _, row := range out {
		symbols = append(symbols, row.Symbol)
	}

	return symbols, nil
}
