package domain

import "fmt"

// Cabin represents a rentable cabin. Cabins are read-only for reservations.
type Cabin struct {
	ID           int64
	Name         string
	MaxCapacity  int
	RegularPrice Money // per night
	Discount     Money // per night, never above RegularPrice
	Image        string
}

// NightlyPrice returns the discounted price of one night.
func (c *Cabin) NightlyPrice() Money {
	return c.RegularPrice - c.Discount
}

// AcceptsGuests returns true if numGuests fits the cabin capacity
func (c *Cabin) AcceptsGuests(numGuests int) bool {
	return numGuests >= MinGuests && numGuests <= c.MaxCapacity
}

// GuestOption is one entry of the guest-count selector
type GuestOption struct {
	Value int
	Label string
}

// GuestOptions returns the selectable guest counts 1..MaxCapacity
func (c *Cabin) GuestOptions() []GuestOption {
	if c.MaxCapacity < MinGuests {
		return []GuestOption{}
	}

	options := make([]GuestOption, 0, c.MaxCapacity)
	for i := MinGuests; i <= c.MaxCapacity; i++ {
		label := fmt.Sprintf("%d guests", i)
		if i == 1 {
			label = "1 guest"
		}
		options = append(options, GuestOption{Value: i, Label: label})
	}
	return options
}
