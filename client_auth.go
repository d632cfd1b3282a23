package bullsbears

import (
	"context"
	"regexp"
	"strings"

	"github.com/MuhammadOusman/BullsAndBears/session"
)

// Local validation thresholds, matching what the backend enforces so obvious
// mistakes never leave the process.
const (
	minLoginPasswordLen  = 6
	minSignupPasswordLen = 8
	minMobileDigits      = 11
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

/*
====================================
SIGNUP
====================================
*/

// Signup describes the signup operation and its observable behavior.
//
// Signup may return an error when input validation, dependency calls, or security checks fail.
// Signup does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*Envelope, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}
	return c.post(ctx, "auth.signup", "/api/auth/signup", req)
}

func validateSignup(req SignupRequest) error {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return ErrNameRequired
	}
	if err := validateEmail(req.Email); err != nil {
		return err
	}
	if req.Password == "" {
		return ErrPasswordRequired
	}
	if len(req.Password) < minSignupPasswordLen {
		return ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if digitCount(req.Mobile) < minMobileDigits {
		return ErrMobileInvalid
	}
	if !req.TermsAccepted {
		return ErrTermsNotAccepted
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

/*
====================================
LOGIN
====================================
*/

// Login describes the login operation and its observable behavior. It calls
// the backend and decodes the issued token and account, without touching the
// stored session. Use [Client.Authenticate] to also persist the result.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginData, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}
	if len(req.Password) < minLoginPasswordLen {
		return nil, ErrPasswordTooShort
	}

	envelope, err := c.post(ctx, "auth.login", "/api/auth/login", req)
	if err != nil {
		return nil, err
	}

	var data LoginData
	if err := envelope.DecodeData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Authenticate logs in and persists the resulting session record, so
// subsequent calls carry the bearer token automatically.
//
// Authenticate may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) Authenticate(ctx context.Context, req LoginRequest) (*LoginData, error) {
	data, err := c.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	sess := session.Session{
		Token: data.Token,
		Role:  string(data.User.Role),
	}
	if err := c.sessions.SetSession(ctx, sess); err != nil {
		return nil, err
	}
	return data, nil
}

// Logout clears the stored session and redirects to the login path through
// the configured navigator. It never calls the backend; tokens are stateless
// on the server side.
func (c *Client) Logout(ctx context.Context) error {
	return c.sessions.Logout(ctx)
}

/*
====================================
PROFILE
====================================
*/

// UserProfile describes the userprofile operation and its observable behavior.
//
// UserProfile may return an error when input validation, dependency calls, or security checks fail.
// UserProfile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) UserProfile(ctx context.Context) (*User, error) {
	envelope, err := c.get(ctx, "auth.profile", "/api/auth/get-user-profile")
	if err != nil {
		return nil, err
	}

	var user User
	if err := envelope.DecodeData(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RequestPasswordChange files a password-change ticket. The change only takes
// effect once an admin approves it through [Client.ApprovePasswordChange].
//
// RequestPasswordChange may return an error when input validation, dependency calls, or security checks fail.
func (c *Client) RequestPasswordChange(ctx context.Context, req PasswordChangeRequest) (*Envelope, error) {
	if req.OldPassword == "" {
		return nil, ErrPasswordRequired
	}
	if len(req.NewPassword) < minSignupPasswordLen {
		return nil, ErrPasswordTooShort
	}
	if req.NewPassword != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	return c.post(ctx, "auth.password_change", "/api/auth/request-password-change", req)
}
