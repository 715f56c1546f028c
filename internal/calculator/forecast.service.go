package calculator

import (
	"math"
	"math/rand"
	"time"

	"stockpulse/internal/domain"
	"stockpulse/internal/util"
)

const (
	lookbackDays  = 60
	lookaheadDays = 14

	trendStrength      = 0.8
	cycleAmplitude     = 0.015
	dailyNoiseFraction = 0.05
	backtestJitter     = 0.01
	backwardBandStep   = 0.008
	forwardBandStep    = 0.012
	progressionPower   = 0.8

	buySignalDay  = 3
	sellSignalDay = 7
)

// ForecastService builds the synthetic actual/predicted/band/signal
// series behind the dashboard chart. The numbers are illustrative, not
// model output: a trend toward the target price, a sine-wave market
// cycle, and volatility-scaled noise.
type ForecastService interface {
	GenerateSeries(prediction domain.Prediction, today time.Time, rng *rand.Rand) []domain.SeriesPoint
}

type forecastServiceHandler struct{}

func NewForecastService() ForecastService {
	return forecastServiceHandler{}
}

// GenerateSeries returns 75 points: 61 backward-looking days (i=60..0,
// oldest first) followed by 14 forward-looking days (i=1..14). The rng
// drives only the price jitter; bounds, dates and signals are
// deterministic for a given prediction.
func (h forecastServiceHandler) GenerateSeries(prediction domain.Prediction, today time.Time, rng *rand.Rand) []domain.SeriesPoint {
	basePrice := prediction.CurrentPrice
	targetPrice := prediction.TargetPrice
	points := make([]domain.SeriesPoint, 0, lookbackDays+1+lookaheadDays)

	for i := lookbackDays; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		dayOffset := float64(lookbackDays-i) / lookbackDays

		trend := (targetPrice - basePrice) * dayOffset * trendStrength
		cycle := math.Sin(float64(lookbackDays-i)/5) * basePrice * cycleAmplitude
		noise := (rng.Float64() - 0.5) * basePrice * prediction.Volatility * dailyNoiseFraction

		actual := basePrice
		if i != 0 {
			actual = basePrice*0.92 + trend + cycle + noise
		}

		point := domain.SeriesPoint{
			Date:   util.DayLabel(date),
			Time:   date,
			Actual: util.FloatPointer(round2(actual)),
		}

		// The in-sample prediction trails off for the most recent 14
		// days; before that it shadows the actual with a small jitter.
		if i > lookaheadDays {
			predicted := actual + (rng.Float64()-0.5)*basePrice*backtestJitter
			uncertainty := math.Max(0, float64(lookaheadDays-i)) * basePrice * backwardBandStep
			point.Predicted = util.FloatPointer(round2(predicted))
			point.UpperBound = util.FloatPointer(round2(predicted + uncertainty))
			point.LowerBound = util.FloatPointer(round2(predicted - uncertainty))
		}

		if i > 0 {
			point.Signal = backwardSignal(actual, basePrice, dayOffset, prediction.Signal)
		}

		points = append(points, point)
	}

	for i := 1; i <= lookaheadDays; i++ {
		date := today.AddDate(0, 0, i)
		dayOffset := float64(i) / lookaheadDays

		progression := math.Pow(dayOffset, progressionPower)
		predicted := basePrice + (targetPrice-basePrice)*progression
		uncertainty := float64(i) * basePrice * forwardBandStep * (1 + prediction.Volatility)

		point := domain.SeriesPoint{
			Date:       util.DayLabel(date),
			Time:       date,
			Predicted:  util.FloatPointer(round2(predicted)),
			UpperBound: util.FloatPointer(round2(predicted + uncertainty)),
			LowerBound: util.FloatPointer(round2(predicted - uncertainty)),
		}

		if i == buySignalDay && prediction.Signal == domain.SignalBuy {
			point.Signal = signalPointer(domain.SignalBuy)
		} else if i == sellSignalDay && prediction.Signal == domain.SignalSell {
			point.Signal = signalPointer(domain.SignalSell)
		}

		points = append(points, point)
	}

	return points
}

// backwardSignal annotates historical dips and peaks: a buy on a >2%
// dip with momentum above 30, a sell on a >3% spike, each gated by the
// prediction's overall signal.
func backwardSignal(actual, basePrice, dayOffset float64, overall domain.Signal) *domain.Signal {
	discounted := basePrice * 0.92
	priceChange := (actual - discounted) / discounted * 100
	momentum := dayOffset * 100

	if priceChange < -2 && momentum > 30 && overall == domain.SignalBuy {
		return signalPointer(domain.SignalBuy)
	}
	if priceChange > 3 && overall == domain.SignalSell {
		return signalPointer(domain.SignalSell)
	}
	return nil
}

func signalPointer(s domain.Signal) *domain.Signal {
	return &s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
