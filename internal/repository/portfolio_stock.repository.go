package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockpulse/internal/db/models/postgres/public/model"
	"stockpulse/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PortfolioStockRepository interface {
	Get(tx *sql.Tx, userID uuid.UUID, symbol string) (*model.PortfolioStock, error)
	List(userID uuid.UUID) ([]model.PortfolioStock, error)
	Add(tx *sql.Tx, ps model.PortfolioStock) (*model.PortfolioStock, error)
	Update(tx *sql.Tx, ps model.PortfolioStock) (*model.PortfolioStock, error)
	Delete(tx *sql.Tx, userID uuid.UUID, symbol string) error
}

type portfolioStockRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioStockRepository(db *sql.DB) PortfolioStockRepository {
	return portfolioStockRepositoryHandler{Db: db}
}

func (h portfolioStockRepositoryHandler) Get(tx *sql.Tx, userID uuid.UUID, symbol string) (*model.PortfolioStock, error) {
	t := table.PortfolioStock

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	query := t.SELECT(t.AllColumns).WHERE(
		t.UserID.EQ(postgres.UUID(userID)).
			AND(t.Symbol.EQ(postgres.String(symbol))),
	)

	out := model.PortfolioStock{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get portfolio stock: %w", err)
	}

	return &out, nil
}

func (h portfolioStockRepositoryHandler) List(userID uuid.UUID) ([]model.PortfolioStock, error) {
	t := table.PortfolioStock

	query := t.SELECT(t.AllColumns).
		WHERE(t.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(t.Symbol.ASC())

	out := []model.PortfolioStock{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio stocks: %w", err)
	}

	return out, nil
}

func (h portfolioStockRepositoryHandler) Add(tx *sql.Tx, ps model.PortfolioStock) (*model.PortfolioStock, error) {
	t := table.PortfolioStock

	ps.CreatedAt = time.Now().UTC()
	ps.ModifiedAt = time.Now().UTC()
	query := t.INSERT(t.MutableColumns).
		MODEL(ps).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PortfolioStock{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio stock: %w", err)
	}

	return &out, nil
}

func (h portfolioStockRepositoryHandler) Update(tx *sql.Tx, ps model.PortfolioStock) (*model.PortfolioStock, error) {
	t := table.PortfolioStock

	ps.ModifiedAt = time.Now().UTC()
	query := t.UPDATE(t.Quantity, t.AveragePrice, t.ModifiedAt).
		MODEL(ps).
		WHERE(
			t.UserID.EQ(postgres.UUID(ps.UserID)).
				AND(t.Symbol.EQ(postgres.String(ps.Symbol))),
		).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PortfolioStock{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio stock: %w", err)
	}

	return &out, nil
}

func (h portfolioStockRepositoryHandler) Delete(tx *sql.Tx, userID uuid.UUID, symbol string) error {
	t := table.PortfolioStock

	query := t.DELETE().WHERE(
		t.UserID.EQ(postgres.UUID(userID)).
			AND(t.Symbol.EQ(postgres.String(symbol))),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio stock: %w", err)
	}

	return nil
}
