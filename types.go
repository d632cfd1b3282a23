package bullsbears

import (
	"encoding/json"
	"errors"
	"time"
)

// Role names the two authorization levels the backend issues.
type Role string

const (
	// RoleAdmin is an exported constant or variable used by the API client.
	RoleAdmin Role = "admin"
	// RoleUser is an exported constant or variable used by the API client.
	RoleUser Role = "user"
)

// ApprovalAction is the fixed action vocabulary of the admin approval
// endpoints.
type ApprovalAction string

const (
	// ActionApprove is an exported constant or variable used by the API client.
	ActionApprove ApprovalAction = "approve"
	// ActionReject is an exported constant or variable used by the API client.
	ActionReject ApprovalAction = "reject"
)

// Envelope is the response wrapper every backend endpoint uses:
// {err, message, data}. Err is returned verbatim — the backend sets err=true
// on some successful "no records" responses, and only the call site decides
// whether that means an empty result or a fault.
type Envelope struct {
	Err     bool            `json:"err"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData unmarshals the envelope's data payload into v. Decoding an
// absent or null payload is a no-op, leaving v at its zero value.
func (e *Envelope) DecodeData(v any) error {
	if e == nil {
		return errors.New("nil envelope")
	}
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// User is the backend account record as returned by the auth and admin
// endpoints.
type User struct {
	ID        string  `json:"_id"`
	FirstName string  `json:"firstname"`
	LastName  string  `json:"lastname"`
	Email     string  `json:"email"`
	Mobile    string  `json:"mobile"`
	Role      Role    `json:"role"`
	Status    string  `json:"status"`
	Balance   float64 `json:"balance"`
}

// LoginData is the payload of a successful login response: the bearer token
// plus the account it authenticates.
type LoginData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignupRequest is the input for [Client.Signup].
type SignupRequest struct {
	FirstName       string `json:"firstname"`
	LastName        string `json:"lastname"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`

	// TermsAccepted is validated locally and never sent over the wire.
	TermsAccepted bool `json:"-"`
}

// LoginRequest is the input for [Client.Login] and [Client.Authenticate].
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest is the input for [Client.RequestPasswordChange].
// The change itself is applied server-side only after admin approval.
type PasswordChangeRequest struct {
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Transaction is a wallet ledger entry (deposit or withdrawal request and its
// approval state).
type Transaction struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TradeRequest is the input for [Client.BuyCrypto].
type TradeRequest struct {
	Symbol   string  `json:"symbol"`
	CoinName string  `json:"coinName"`
	Amount   float64 `json:"amount"`
	Price    float64 `json:"price"`
}

// Trade is a trade record as returned by the trade endpoints.
type Trade struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Symbol    string    `json:"symbol"`
	CoinName  string    `json:"coinName"`
	Amount    float64   `json:"amount"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// WatchlistRequest is the input for [Client.AddToWatchlist].
type WatchlistRequest struct {
	AssetID string `json:"assetId"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// WatchlistItem is a tracked asset as returned by the watchlist endpoints.
type WatchlistItem struct {
	ID      string `json:"_id"`
	AssetID string `json:"assetId"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// PasswordChangeTicket is a pending password-change approval as returned by
// the admin password-request endpoints. The requesting account is embedded by
// the backend.
type PasswordChangeTicket struct {
	ID        string    `json:"_id"`
	User      User      `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
