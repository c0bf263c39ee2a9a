package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates. Time of day never
// travels with a booking date.
const DateLayout = "2006-01-02"

// DateRange is a confirmed check-in/check-out pair of whole days.
// It is replaced wholesale on every new picker confirmation.
type DateRange struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// NewDateRange parses and validates a check-in/check-out pair.
func NewDateRange(checkIn, checkOut string) (DateRange, error) {
	start, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	end, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("check-out %s precedes check-in %s", checkOut, checkIn)
	}
	return DateRange{CheckIn: start, CheckOut: end}, nil
}

// StayLengthDays is the whole-day difference between check-out and check-in.
// A three-night stay has a length of three, not four.
func (r DateRange) StayLengthDays() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

func (r DateRange) CheckInString() string  { return r.CheckIn.Format(DateLayout) }
func (r DateRange) CheckOutString() string { return r.CheckOut.Format(DateLayout) }
