package domain

import (
	"fmt"
	"math"
)

// Money is a currency amount in minor units (paise for INR).
type Money int64

// MoneyFromMajor converts a major-unit amount (e.g. rupees) to Money,
// rounding to the nearest minor unit.
func MoneyFromMajor(amount float64) Money {
	return Money(math.Round(amount * MinorUnitsPerMajor))
}

// Major returns the amount in major units.
func (m Money) Major() float64 {
	return float64(m) / MinorUnitsPerMajor
}

// MinorUnits returns the amount in minor units, the form payment gateways expect.
func (m Money) MinorUnits() int64 {
	return int64(m)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/MinorUnitsPerMajor, v%MinorUnitsPerMajor)
}
