package calculator

import (
	"math/rand"
	"testing"

	"stockpulse/internal/domain"
	"stockpulse/internal/util"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	handler := metricsServiceHandler{}

	t.Run("computes summary statistics over the actual prices", func(t *testing.T) {
		points := []domain.SeriesPoint{
			{Actual: util.FloatPointer(1)},
			{Actual: util.FloatPointer(2)},
			{Actual: util.FloatPointer(3)},
			{Actual: util.FloatPointer(4)},
			{
				Predicted:  util.FloatPointer(5),
				UpperBound: util.FloatPointer(6.5),
				LowerBound: util.FloatPointer(4.5),
			},
		}
		prediction := domain.Prediction{ExpectedReturn: 7.76, Confidence: 0.78}

		metrics, err := handler.Summarize(points, prediction)
		require.NoError(t, err)

		require.InDelta(t, 2.5, metrics.MeanActual, 1e-9)
		require.InDelta(t, 1.118033988749895, metrics.StdDevActual, 1e-9)
		require.InDelta(t, 1.0, metrics.MinActual, 1e-9)
		require.InDelta(t, 4.0, metrics.MaxActual, 1e-9)
		require.InDelta(t, 2.0, metrics.HorizonBandWidth, 1e-9)
		require.Equal(t, 7.76, metrics.ExpectedReturn)
		require.Equal(t, 0.78, metrics.Confidence)
	})

	t.Run("uses the last banded point for the horizon width", func(t *testing.T) {
		points := []domain.SeriesPoint{
			{Actual: util.FloatPointer(10)},
			{
				Predicted:  util.FloatPointer(11),
				UpperBound: util.FloatPointer(12),
				LowerBound: util.FloatPointer(10),
			},
			{
				Predicted:  util.FloatPointer(12),
				UpperBound: util.FloatPointer(15),
				LowerBound: util.FloatPointer(9),
			},
		}

		metrics, err := handler.Summarize(points, domain.Prediction{})
		require.NoError(t, err)
		require.InDelta(t, 6.0, metrics.HorizonBandWidth, 1e-9)
	})

	t.Run("rejects a series with no actual prices", func(t *testing.T) {
		points := []domain.SeriesPoint{
			{Predicted: util.FloatPointer(5)},
		}

		_, err := handler.Summarize(points, domain.Prediction{})
		require.ErrorContains(t, err, "no actual prices")
	})

	t.Run("summarizes a generated series end to end", func(t *testing.T) {
		prediction := domain.PredictionFor("AAPL")
		points := forecastServiceHandler{}.GenerateSeries(prediction, fixedDay(), rand.New(rand.NewSource(9)))

		metrics, err := handler.Summarize(points, prediction)
		require.NoError(t, err)

		require.Greater(t, metrics.MaxActual, metrics.MinActual)
		require.Greater(t, metrics.StdDevActual, 0.0)
		require.Greater(t, metrics.HorizonBandWidth, 0.0)
		require.Equal(t, prediction.ExpectedReturn, metrics.ExpectedReturn)
	})
}
