package bullsbears

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MuhammadOusman/BullsAndBears/jwt"
	"github.com/MuhammadOusman/BullsAndBears/session"
)

// Builder defines a public type used by bullsbears APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	httpClient   *http.Client
	sessionStore session.Store
	navigator    session.Navigator
	auditSink    AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
//
// WithHTTPClient does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithSessionStore describes the withsessionstore operation and its observable behavior.
//
// WithSessionStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithSessionStore(store session.Store) *Builder {
	b.sessionStore = store
	return b
}

// WithNavigator describes the withnavigator operation and its observable behavior.
//
// WithNavigator does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithNavigator(nav session.Navigator) *Builder {
	b.navigator = nav
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build(ctx context.Context) (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := b.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	store := b.sessionStore
	if store == nil {
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, b.navigator, cfg.Session.LoginPath)
	if err := sessions.Restore(ctx); err != nil {
		return nil, err
	}

	// A restored token without a role happens after upgrades from older
	// stored records. The role rides inside the token, so peek it back out.
	if sess := sessions.Current(); sess.Token != "" && sess.Role == "" {
		if claims, err := jwt.Peek(sess.Token); err == nil && claims.Role != "" {
			if err := sessions.SetRole(ctx, claims.Role); err != nil {
				return nil, err
			}
		}
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.RequestTimeout}
	}

	client := &Client{
		config:   cfg,
		http:     httpClient,
		baseURL:  cfg.API.BaseURL,
		sessions: sessions,
		audit:    newAuditDispatcher(cfg.Audit, b.auditSink),
	}

	b.built = true

	return client, nil
}
