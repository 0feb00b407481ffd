package domain

import (
	"errors"
	"time"
)

var (
	// ErrRangeIncomplete is returned when either end of the range is unset
	ErrRangeIncomplete = errors.New("domain: date range is incomplete")

	// ErrRangeInverted is returned when the end date is not after the start date
	ErrRangeInverted = errors.New("domain: date range end must be after start")
)

// DateRange is the stay selected by the guest. Either end may be unset
// before the guest finishes picking dates.
type DateRange struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// NewDateRange builds a range from optional dates, truncating them to calendar days.
func NewDateRange(from, to *time.Time) (DateRange, error) {
	r := DateRange{From: truncateToDay(from), To: truncateToDay(to)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// IsComplete returns true if both ends are set
func (r DateRange) IsComplete() bool {
	return r.From != nil && r.To != nil
}

// IsEmpty returns true if neither end is set
func (r DateRange) IsEmpty() bool {
	return r.From == nil && r.To == nil
}

// Validate checks that To is after From once both are set
func (r DateRange) Validate() error {
	if !r.IsComplete() {
		return nil
	}
	if !r.To.After(*r.From) {
		return ErrRangeInverted
	}
	return nil
}

func truncateToDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day
}
