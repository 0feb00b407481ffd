package domain

import "time"

// Quote holds the values derived from a cabin and a complete date range
type Quote struct {
	StartDate  time.Time
	EndDate    time.Time
	NumNights  int
	CabinPrice Money
}

// NumNights returns the number of whole days between start and end.
// Both dates are compared as calendar days, so the time of day is ignored.
func NumNights(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	s := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// CabinPrice returns numNights × (RegularPrice − Discount)
func CabinPrice(numNights int, cabin *Cabin) Money {
	return Money(numNights) * cabin.NightlyPrice()
}

// QuoteFor derives the stay length and price for a cabin and a range
func QuoteFor(cabin *Cabin, r DateRange) (*Quote, error) {
	if !r.IsComplete() {
		return nil, ErrRangeIncomplete
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	nights := NumNights(*r.From, *r.To)
	if nights < 1 {
		return nil, ErrRangeInverted
	}

	return &Quote{
		StartDate:  *r.From,
		EndDate:    *r.To,
		NumNights:  nights,
		CabinPrice: CabinPrice(nights, cabin),
	}, nil
}
