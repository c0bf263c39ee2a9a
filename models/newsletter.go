package models

// SignupResponse is the newsletter form's JSON reply. On validation
// failures the store returns per-field messages instead of one message.
type SignupResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}
