package repository

import (
	"database/sql"
	"fmt"
	"time"

	"stockpulse/internal/db/models/postgres/public/model"
	"stockpulse/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TransactionRepository interface {
	Add(tx *sql.Tx, t model.Transaction) (*model.Transaction, error)
	List(userID uuid.UUID, limit int64) ([]model.Transaction, error)
}

type transactionRepositoryHandler struct {
	Db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return transactionRepositoryHandler{Db: db}
}

// Add appends a transaction record. Rows in this table are never
// updated or deleted.
func (h transactionRepositoryHandler) Add(tx *sql.Tx, in model.Transaction) (*model.Transaction, error) {
	t := table.Transaction

	in.CreatedAt = time.Now().UTC()
	query := t.INSERT(t.MutableColumns).
		MODEL(in).
		RETURNING(t.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Transaction{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return &out, nil
}

func (h transactionRepositoryHandler) List(userID uuid.UUID, limit int64) ([]model.Transaction, error) {
	t := table.Transaction

	query := t.SELECT(t.AllColumns).
		WHERE(t.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(t.CreatedAt.DESC())
	if limit > 0 {
		query = query.LIMIT(limit)
	}

	out := []model.Transaction{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return out, nil
}
