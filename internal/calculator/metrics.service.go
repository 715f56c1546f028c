package calculator

import (
	"fmt"

	"stockpulse/internal/domain"

	"github.com/montanaflynn/stats"
)

type SeriesMetrics struct {
	MeanActual       float64 `json:"meanActual"`
	StdDevActual     float64 `json:"stdDevActual"`
	MinActual        float64 `json:"minActual"`
	MaxActual        float64 `json:"maxActual"`
	ExpectedReturn   float64 `json:"expectedReturn"`
	Confidence       float64 `json:"confidence"`
	HorizonBandWidth float64 `json:"horizonBandWidth"`
}

type MetricsService interface {
	Summarize(points []domain.SeriesPoint, prediction domain.Prediction) (*SeriesMetrics, error)
}

type metricsServiceHandler struct{}

func NewMetricsService() MetricsService {
	return metricsServiceHandler{}
}

// Summarize condenses a generated series into the headline numbers the
// dashboard's metrics panel shows.
func (h metricsServiceHandler) Summarize(points []domain.SeriesPoint, prediction domain.Prediction) (*SeriesMetrics, error) {
	actuals := stats.Float64Data{}
	var lastUpper, lastLower *float64
	for _, point := range points {
		if point.Actual != nil {
			actuals = append(actuals, *point.Actual)
		}
		if point.UpperBound != nil && point.LowerBound != nil {
			lastUpper = point.UpperBound
			lastLower = point.LowerBound
		}
	}
	if len(actuals) == 0 {
		return nil, fmt.Errorf("cannot summarize series with no actual prices")
	}

	mean, err := stats.Mean(actuals)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	stdDev, err := stats.StandardDeviation(actuals)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stddev: %w", err)
	}
	min, err := stats.Min(actuals)
	if err != nil {
		return nil, fmt.Errorf("failed to compute min: %w", err)
	}
	max, err := stats.Max(actuals)
	if err != nil {
		return nil, fmt.Errorf("failed to compute max: %w", err)
	}

	out := &SeriesMetrics{
		MeanActual:     mean,
		StdDevActual:   stdDev,
		MinActual:      min,
		MaxActual:      max,
		ExpectedReturn: prediction.ExpectedReturn,
		Confidence:     prediction.Confidence,
	}
	if lastUpper != nil && lastLower != nil {
		out.HorizonBandWidth = *lastUpper - *lastLower
	}

	return out, nil
}
