package domain

import "time"

// SeriesPoint is one day of the forecast chart. Past points carry
// Actual; points inside the look-ahead window carry Predicted plus the
// confidence band instead. Nil means absent.
type SeriesPoint struct {
	Date       string    `json:"date"`
	Time       time.Time `json:"-"`
	Actual     *float64  `json:"actual"`
	Predicted  *float64  `json:"predicted"`
	UpperBound *float64  `json:"upperBound"`
	LowerBound *float64  `json:"lowerBound"`
	Signal     *Signal   `json:"signal"`
}
