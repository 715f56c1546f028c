package repository

import (
	"database/sql"
	"fmt"

	"stockpulse/internal/db/models/postgres/public/model"
	"stockpulse/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type RecommendedStockRepository interface {
	List() ([]model.RecommendedStock, error)
	Seed([]model.RecommendedStock) error
}

type recommendedStockRepositoryHandler struct {
	Db *sql.DB
}

func NewRecommendedStockRepository(db *sql.DB) RecommendedStockRepository {
	return recommendedStockRepositoryHandler{Db: db}
}

func (h recommendedStockRepositoryHandler) List() ([]model.RecommendedStock, error) {
	t := table.RecommendedStock

	query := t.SELECT(t.AllColumns).ORDER_BY(t.Priority.ASC())

	out := []model.RecommendedStock{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommended stocks: %w", err)
	}

	return out, nil
}

// Seed replaces the reference list. Used by the seed script only.
func (h recommendedStockRepositoryHandler) Seed(stocks []model.RecommendedStock) error {
	t := table.RecommendedStock

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := t.DELETE().WHERE(postgres.Bool(true)).Exec(tx); err != nil {
		return fmt.Errorf("failed to clear recommended stocks: %w", err)
	}

	for _, stock := range stocks {
		query := t.INSERT(t.AllColumns).MODEL(stock)
		if _, err := query.Exec(tx); err != nil {
			return fmt.Errorf("failed to seed recommended stock %s: %w", stock.Symbol, err)
		}
	}

	return tx.Commit()
}
