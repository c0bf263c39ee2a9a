package models

import "github.com/shopspring/decimal"

// Card is the view model projected from one crashpad. Rendered state is
// derived from it; the crashpad data stays the single source of truth.
type Card struct {
	CrashpadID  int64  `json:"crashpadId"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`

	// Description expansion. ShowExpand is false for short descriptions;
	// the control is absent entirely in that case.
	ShowExpand  bool   `json:"showExpand"`
	Expanded    bool   `json:"expanded"`
	ExpandLabel string `json:"expandLabel,omitempty"`

	Selected bool `json:"selected"`

	DayRate         decimal.Decimal `json:"dayRate"`
	SevenDayRate    decimal.Decimal `json:"sevenDayRate"`
	FourteenDayRate decimal.Decimal `json:"fourteenDayRate"`
}
