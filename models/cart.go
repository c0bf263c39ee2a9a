package models

// CartRequest is the payload for the store's rental cart endpoint.
// Quantity is fixed at one per crashpad; the store books whole units.
type CartRequest struct {
	CrashpadIDs []int64 `json:"crashpad_ids"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Quantity    int     `json:"quantity"`
}

// CartResponse is what the store returns from a cart mutation.
type CartResponse struct {
	RedirectURL string `json:"redirect_url,omitempty"`
	Error       string `json:"error,omitempty"`
}
