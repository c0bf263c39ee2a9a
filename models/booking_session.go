package models

// ViewState mirrors the visible state of the booking page: the loading
// indicator, the results area and the explicit zero-availability notice.
type ViewState struct {
	Loading        bool `json:"loading"`
	ResultsVisible bool `json:"resultsVisible"`
	NoAvailability bool `json:"noAvailability"`
}

// BookingSession holds one visitor's rental booking flow between requests:
// the confirmed date range, the last availability result set, the derived
// cards and the current selection. Selected ids are kept sorted so cached
// sessions serialize stably.
type BookingSession struct {
	SessionID string     `json:"sessionId"`
	MinDate   string     `json:"minDate"`
	DateRange *DateRange `json:"dateRange,omitempty"`
	Selected  []int64    `json:"selected,omitempty"`
	Crashpads []Crashpad `json:"crashpads,omitempty"`
	Cards     []Card     `json:"cards,omitempty"`

	// FetchToken tags the latest availability search. Completions carrying
	// an older token are dropped instead of rendered.
	FetchToken uint64 `json:"fetchToken"`

	View ViewState `json:"view"`
}
