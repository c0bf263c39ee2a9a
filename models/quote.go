package models

import "github.com/shopspring/decimal"

// PriceQuote is derived from the current selection and date range. It is
// recomputed on every change and never stored.
type PriceQuote struct {
	StayLengthDays int                       `json:"stayLengthDays"`
	RatePerUnit    map[int64]decimal.Decimal `json:"ratePerUnit"`
	Total          decimal.Decimal           `json:"total"`
}

// Summary is the running selection summary shown beneath the results.
// Suppressed means nothing should be rendered: either no crashpad is
// selected or no date range is active.
type Summary struct {
	Count      int             `json:"count"`
	Days       int             `json:"days"`
	Total      decimal.Decimal `json:"total"`
	Suppressed bool            `json:"suppressed"`
}
