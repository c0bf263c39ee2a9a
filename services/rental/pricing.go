package rental

import (
	"boulderhub/models"

	"github.com/shopspring/decimal"
)

// DailyRate picks the rate tier for a stay: two weeks and longer book at
// the fourteen-day rate, a full week and longer at the seven-day rate,
// anything shorter at the plain day rate.
func DailyRate(pad models.Crashpad, stayLengthDays int) decimal.Decimal {
	switch {
	case stayLengthDays >= 14:
		return pad.FourteenDayRate
	case stayLengthDays >= 7:
		return pad.SevenDayRate
	default:
		return pad.DayRate
	}
}

// Total is the cost of renting one crashpad for the whole stay.
func Total(pad models.Crashpad, stayLengthDays int) decimal.Decimal {
	return DailyRate(pad, stayLengthDays).Mul(decimal.NewFromInt(int64(stayLengthDays)))
}

// Quote prices the current selection against the active stay length. Only
// crashpads present in the result set are priced; a selected id with no
// matching crashpad contributes nothing.
func Quote(pads []models.Crashpad, sel Selection, stayLengthDays int) models.PriceQuote {
	q := models.PriceQuote{
		StayLengthDays: stayLengthDays,
		RatePerUnit:    make(map[int64]decimal.Decimal, sel.Count()),
		Total:          decimal.Zero,
	}
	for _, pad := range pads {
		if !sel.Has(pad.ID) {
			continue
		}
		rate := DailyRate(pad, stayLengthDays)
		q.RatePerUnit[pad.ID] = rate
		q.Total = q.Total.Add(rate.Mul(decimal.NewFromInt(int64(stayLengthDays))))
	}
	return q
}
