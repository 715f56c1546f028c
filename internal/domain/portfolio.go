package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

type Position struct {
	Symbol      string
	Quantity    int64
	AverageCost decimal.Decimal
}

// Transaction is an immutable record of a single fill against the
// simulated ledger.
type Transaction struct {
	Symbol      string
	Side        TradeSide
	Quantity    int64
	Price       decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

type Portfolio struct {
	Cash      decimal.Decimal
	Positions map[string]*Position
}

// DefaultCashBalance is granted when a portfolio is first created.
var DefaultCashBalance = decimal.NewFromFloat(150.00)

func NewPortfolio() *Portfolio {
	return &Portfolio{
		Cash:      DefaultCashBalance,
		Positions: map[string]*Position{},
	}
}

func (p Portfolio) HeldSymbols() []string {
	symbols := []string{}
	for symbol := range p.Positions {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// TotalValue is the accounting identity cash + Σ(quantity × averageCost),
// not a mark-to-market valuation.
func (p Portfolio) TotalValue() decimal.Decimal {
	total := p.Cash
	for _, position := range p.Positions {
		total = total.Add(position.AverageCost.Mul(decimal.NewFromInt(position.Quantity)))
	}
	return total
}

func (p Portfolio) DeepCopy() *Portfolio {
	out := &Portfolio{
		Cash:      p.Cash,
		Positions: map[string]*Position{},
	}
	for symbol, position := range p.Positions {
		copied := *position
		out.Positions[symbol] = &copied
	}
	return out
}

func validateOrder(quantity int64, price decimal.Decimal) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be a positive number of shares, got %d", quantity)
	}
	if !price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", price)
	}
	return nil
}

// ApplyBuy debits cash and folds the fill into the position at
// quantity-weighted average cost. On any error the portfolio is left
// unchanged.
func (p *Portfolio) ApplyBuy(symbol string, quantity int64, price decimal.Decimal) (*Transaction, error) {
	if err := validateOrder(quantity, price); err != nil {
		return nil, err
	}

	total := price.Mul(decimal.NewFromInt(quantity))
	if total.GreaterThan(p.Cash) {
		return nil, InsufficientFundsError{Required: total, Available: p.Cash}
	}

	p.Cash = p.Cash.Sub(total)
	if existing, ok := p.Positions[symbol]; ok {
		oldQuantity := decimal.NewFromInt(existing.Quantity)
		newQuantity := existing.Quantity + quantity
		existing.AverageCost = existing.AverageCost.Mul(oldQuantity).
			Add(total).
			Div(decimal.NewFromInt(newQuantity))
		existing.Quantity = newQuantity
	} else {
		p.Positions[symbol] = &Position{
			Symbol:      symbol,
			Quantity:    quantity,
			AverageCost: price,
		}
	}

	return &Transaction{
		Symbol:      symbol,
		Side:        TradeSideBuy,
		Quantity:    quantity,
		Price:       price,
		TotalAmount: total,
	}, nil
}

// ApplySell credits cash and decrements the position, removing it when
// the quantity reaches zero. Average cost is a cost basis and is not
// touched on sell.
func (p *Portfolio) ApplySell(symbol string, quantity int64, price decimal.Decimal) (*Transaction, error) {
	if err := validateOrder(quantity, price); err != nil {
		return nil, err
	}

	existing, ok := p.Positions[symbol]
	if !ok || existing.Quantity < quantity {
		var owned int64
		if ok {
			owned = existing.Quantity
		}
		return nil, InsufficientSharesError{Symbol: symbol, Requested: quantity, Owned: owned}
	}

	total := price.Mul(decimal.NewFromInt(quantity))
	p.Cash = p.Cash.Add(total)
	if existing.Quantity == quantity {
		delete(p.Positions, symbol)
	} else {
		existing.Quantity -= quantity
	}

	return &Transaction{
		Symbol:      symbol,
		Side:        TradeSideSell,
		Quantity:    quantity,
		Price:       price,
		TotalAmount: total,
	}, nil
}
