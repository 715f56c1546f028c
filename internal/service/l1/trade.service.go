package l1_service

import (
	"database/sql"
	"fmt"

	"stockpulse/internal/db/models/postgres/public/model"
	"stockpulse/internal/domain"
	"stockpulse/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeService reconciles a simulated buy or sell against the ledger:
// cash balance, position, and an appended transaction record. All
// three writes go through the caller's tx so a failure anywhere rolls
// back everything.
type TradeService interface {
	Buy(tx *sql.Tx, input TradeInput) (*TradeResult, error)
	Sell(tx *sql.Tx, input TradeInput) (*TradeResult, error)
}

type TradeInput struct {
	UserID   uuid.UUID
	Symbol   string
	Quantity int64
	Price    decimal.Decimal
}

type TradeResult struct {
	CashBalance decimal.Decimal
	Position    *model.PortfolioStock
	Transaction model.Transaction
}

type tradeServiceHandler struct {
	PortfolioRepository      repository.PortfolioRepository
	PortfolioStockRepository repository.PortfolioStockRepository
	TransactionRepository    repository.TransactionRepository
}

func NewTradeService(
	portfolioRepository repository.PortfolioRepository,
	portfolioStockRepository repository.PortfolioStockRepository,
	transactionRepository repository.TransactionRepository,
) TradeService {
	return tradeServiceHandler{
		PortfolioRepository:      portfolioRepository,
		PortfolioStockRepository: portfolioStockRepository,
		TransactionRepository:    transactionRepository,
	}
}

func (h tradeServiceHandler) Buy(tx *sql.Tx, input TradeInput) (*TradeResult, error) {
	portfolio, position, err := h.loadState(tx, input)
	if err != nil {
		return nil, err
	}

	ledger := toLedger(portfolio, position)
	txn, err := ledger.ApplyBuy(input.Symbol, input.Quantity, input.Price)
	if err != nil {
		return nil, err
	}

	updated, err := h.PortfolioRepository.UpdateCash(tx, input.UserID, ledger.Cash)
	if err != nil {
		return nil, err
	}

	newPosition := ledger.Positions[input.Symbol]
	var storedPosition *model.PortfolioStock
	if position == nil {
		storedPosition, err = h.PortfolioStockRepository.Add(tx, model.PortfolioStock{
			UserID:       input.UserID,
			Symbol:       input.Symbol,
			Quantity:     newPosition.Quantity,
			AveragePrice: newPosition.AverageCost,
		})
	} else {
		position.Quantity = newPosition.Quantity
		position.AveragePrice = newPosition.AverageCost
		storedPosition, err = h.PortfolioStockRepository.Update(tx, *position)
	}
	if err != nil {
		return nil, err
	}

	storedTxn, err := h.appendTransaction(tx, input.UserID, txn)
	if err != nil {
		return nil, err
	}

	return &TradeResult{
		CashBalance: updated.CashBalance,
		Position:    storedPosition,
		Transaction: *storedTxn,
	}, nil
}

func (h tradeServiceHandler) Sell(tx *sql.Tx, input TradeInput) (*TradeResult, error) {
	portfolio, position, err := h.loadState(tx, input)
	if err != nil {
		return nil, err
	}

	ledger := toLedger(portfolio, position)
	txn, err := ledger.ApplySell(input.Symbol, input.Quantity, input.Price)
	if err != nil {
		return nil, err
	}

	updated, err := h.PortfolioRepository.UpdateCash(tx, input.UserID, ledger.Cash)
	if err != nil {
		return nil, err
	}

	var storedPosition *model.PortfolioStock
	if remaining, held := ledger.Positions[input.Symbol]; !held {
		if err := h.PortfolioStockRepository.Delete(tx, input.UserID, input.Symbol); err != nil {
			return nil, err
		}
	} else {
		position.Quantity = remaining.Quantity
		storedPosition, err = h.PortfolioStockRepository.Update(tx, *position)
		if err != nil {
			return nil, err
		}
	}

	storedTxn, err := h.appendTransaction(tx, input.UserID, txn)
	if err != nil {
		return nil, err
	}

	return &TradeResult{
		CashBalance: updated.CashBalance,
		Position:    storedPosition,
		Transaction: *storedTxn,
	}, nil
}

func (h tradeServiceHandler) loadState(tx *sql.Tx, input TradeInput) (*model.Portfolio, *model.PortfolioStock, error) {
	portfolio, err := h.PortfolioRepository.GetOrCreate(tx, input.UserID)
	if err != nil {
		return nil, nil, err
	}
	position, err := h.PortfolioStockRepository.Get(tx, input.UserID, input.Symbol)
	if err != nil {
		return nil, nil, err
	}
	return portfolio, position, nil
}

func (h tradeServiceHandler) appendTransaction(tx *sql.Tx, userID uuid.UUID, txn *domain.Transaction) (*model.Transaction, error) {
	side := model.TradeSide_Buy
	if txn.Side == domain.TradeSideSell {
		side = model.TradeSide_Sell
	}
	stored, err := h.TransactionRepository.Add(tx, model.Transaction{
		UserID:      userID,
		Symbol:      txn.Symbol,
		Side:        side,
		Quantity:    txn.Quantity,
		Price:       txn.Price,
		TotalAmount: txn.TotalAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return stored, nil
}

func toLedger(portfolio *model.Portfolio, position *model.PortfolioStock) *domain.Portfolio {
	ledger := &domain.Portfolio{
		Cash:      portfolio.CashBalance,
		Positions: map[string]*domain.Position{},
	}
	if position != nil {
		ledger.Positions[position.Symbol] = &domain.Position{
			Symbol:      position.Symbol,
			Quantity:    position.Quantity,
			AverageCost: position.AveragePrice,
		}
	}
	return ledger
}
