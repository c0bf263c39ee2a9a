package rental

import "time"

// EarliestBookableDate returns the first calendar date a rental may start
// on. At or past the cutoff hour the shop can no longer hand out pads the
// same day, so the earliest date rolls over to tomorrow. The result is the
// start of day in now's location.
func EarliestBookableDate(now time.Time, cutoffHour int) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if now.Hour() >= cutoffHour {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// BookingZone loads the shop's IANA time zone. An unknown name falls back
// to UTC rather than failing startup.
func BookingZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
