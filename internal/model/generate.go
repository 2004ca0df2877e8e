package model

// GenerateResponse represents the response for POST /shield/generate and
// POST /shield/restore. SkippedRoles lists roles whose derivation path was
// out of bounds; the wallet is still valid without them.
type GenerateResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Network      string        `json:"network"`
	Addresses    []RoleAddress `json:"addresses"`
	SkippedRoles []string      `json:"skippedRoles,omitempty"`
	Mnemonic     string        `json:"mnemonic,omitempty"`
}

// RestoreRequest represents the request body for POST /shield/restore.
type RestoreRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

// AddressBookResponse represents the response for GET /shield/addresses.
type AddressBookResponse struct {
	Network   string        `json:"network"`
	Addresses []RoleAddress `json:"addresses"`
	QR        string        `json:"QR,omitempty"`
}
