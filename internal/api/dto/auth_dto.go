package dto

// CustomerLoginRequest payload for customer login.
type CustomerLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StaffLoginRequest payload for staff login.
type StaffLoginRequest struct {
	StaffID  string `json:"staff_id"`
	Password string `json:"password"`
}

// SessionResponse describes the current session to the browser.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Subject       string `json:"subject,omitempty"`
	Role          string `json:"role,omitempty"`
	BranchCode    string `json:"branch_code,omitempty"`
	Position      string `json:"position,omitempty"`
	ExpiresAt     int64  `json:"expires_at,omitempty"`
	Landing       string `json:"landing"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Session SessionResponse `json:"session"`
	Landing string          `json:"landing"`
}
