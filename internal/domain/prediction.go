package domain

type Signal string

const (
	SignalBuy  Signal = "buy"
	SignalSell Signal = "sell"
	SignalHold Signal = "hold"
)

// Prediction is the static parameter set driving the synthetic forecast
// for a symbol. These are illustrative numbers, not model output.
type Prediction struct {
	CurrentPrice   float64 `json:"currentPrice"`
	TargetPrice    float64 `json:"targetPrice"`
	ExpectedReturn float64 `json:"expectedReturn"`
	Confidence     float64 `json:"confidence"`
	Signal         Signal  `json:"signal"`
	Volatility     float64 `json:"volatility"`
}

var predictions = map[string]Prediction{
	"AAPL": {
		CurrentPrice:   178.45,
		TargetPrice:    192.30,
		ExpectedReturn: 7.76,
		Confidence:     0.78,
		Signal:         SignalBuy,
		Volatility:     0.21,
	},
	"GOOGL": {
		CurrentPrice:   141.23,
		TargetPrice:    138.50,
		ExpectedReturn: -1.93,
		Confidence:     0.65,
		Signal:         SignalSell,
		Volatility:     0.18,
	},
	"MSFT": {
		CurrentPrice:   378.91,
		TargetPrice:    395.20,
		ExpectedReturn: 4.30,
		Confidence:     0.82,
		Signal:         SignalBuy,
		Volatility:     0.16,
	},
	"TSLA": {
		CurrentPrice:   242.84,
		TargetPrice:    245.10,
		ExpectedReturn: 0.93,
		Confidence:     0.52,
		Signal:         SignalHold,
		Volatility:     0.38,
	},
	"AMZN": {
		CurrentPrice:   178.35,
		TargetPrice:    188.75,
		ExpectedReturn: 5.83,
		Confidence:     0.73,
		Signal:         SignalBuy,
		Volatility:     0.23,
	},
}

const fallbackSymbol = "AAPL"

// PredictionFor looks up the prediction for a symbol, falling back to
// AAPL's parameters for unknown symbols.
func PredictionFor(symbol string) Prediction {
	if p, ok := predictions[symbol]; ok {
		return p
	}
	return predictions[fallbackSymbol]
}

func PredictedSymbols() []string {
	symbols := make([]string, 0, len(predictions))
	for symbol := range predictions {
		symbols = append(symbols, symbol)
	}
	return symbols
}
