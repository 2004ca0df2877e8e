package model

// ValidateResponse represents the response for GET /shield/validate.
// Invalid addresses are a normal outcome, not an error status.
type ValidateResponse struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Network string `json:"network,omitempty"`
	Reason  string `json:"reason"`
}
