package bullsbears

import (
	"errors"
	"os"
	"strings"
	"time"
)

// defaultBaseURL is the deployed backend origin used when no override is
// configured through [Config] or the environment.
const defaultBaseURL = "https://bulls-bear-backend.vercel.app"

// baseURLEnvVar overrides the backend origin at process start.
const baseURLEnvVar = "BULLSBEARS_API_BASE_URL"

// Config defines a public type used by bullsbears APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Audit   AuditConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by bullsbears APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	// BaseURL is the backend origin every endpoint path is resolved against.
	// Trailing slashes are trimmed at Build.
	BaseURL string

	// RequestTimeout bounds individual transport calls. Zero means no
	// client-imposed timeout: a hung request stays outstanding until the
	// caller's context cancels it.
	RequestTimeout time.Duration

	// UserAgent is sent on every request when non-empty.
	UserAgent string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by bullsbears APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// LoginPath is the navigation entry point for unauthenticated users.
	// Logout redirects here unless the current location already matches.
	LoginPath string
}

// AuditConfig defines a public type used by bullsbears APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the configuration used when [Builder.WithConfig] is
// not called. The base URL honors the BULLSBEARS_API_BASE_URL environment
// variable before falling back to the deployed backend origin.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:        baseURLFromEnv(),
			RequestTimeout: 0,
		},
		Session: SessionConfig{
			LoginPath: "/login",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
	}
}

func baseURLFromEnv() string {
	if v := strings.TrimSpace(os.Getenv(baseURLEnvVar)); v != "" {
		return v
	}
	return defaultBaseURL
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("API BaseURL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return errors.New("API BaseURL must be an http or https origin")
	}
	if c.API.RequestTimeout < 0 {
		return errors.New("API RequestTimeout must be >= 0")
	}
	if strings.TrimSpace(c.Session.LoginPath) == "" {
		return errors.New("Session LoginPath is required")
	}
	if !strings.HasPrefix(c.Session.LoginPath, "/") {
		return errors.New("Session LoginPath must be an absolute path")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when audit is enabled")
	}
	return nil
}
