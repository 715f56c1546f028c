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
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PortfolioRepository interface {
	GetOrCreate(tx *sql.Tx, userID uuid.UUID) (*model.Portfolio, error)
	UpdateCash(tx *sql.Tx, userID uuid.UUID, cashBalance decimal.Decimal) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) GetOrCreate(tx *sql.Tx, userID uuid.UUID) (*model.Portfolio, error) {
	t := table.Portfolio

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	getQuery := t.SELECT(t.AllColumns).WHERE(t.UserID.EQ(postgres.UUID(userID)))
	out := model.Portfolio{}
	err := getQuery.Query(db, &out)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	} else if err == nil {
		return &out, nil
	}

	newModel := model.Portfolio{
		UserID:      userID,
		CashBalance: domain.DefaultCashBalance,
		CreatedAt:   time.Now().UTC(),
		ModifiedAt:  time.Now().UTC(),
	}
	createQuery := t.INSERT(t.UserID, t.CashBalance, t.CreatedAt, t.ModifiedAt).
		MODEL(newModel).
		RETURNING(t.AllColumns)

	err = createQuery.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}

	return &out, nil
}

func (h portfolioRepositoryHandler) UpdateCash(tx *sql.Tx, userID uuid.UUID, cashBalance decimal.Decimal) (*model.Portfolio, error) {
	t := table.Portfolio

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	update := model.Portfolio{
		CashBalance: cashBalance,
		ModifiedAt:  time.Now().UTC(),
	}
	query := t.UPDATE(t.CashBalance, t.ModifiedAt).
		MODEL(update).
		WHERE(t.UserID.EQ(postgres.UUID(userID))).
		RETURNING(t.AllColumns)

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update cash balance: %w", err)
	}

	return &out, nil
}
