package bullsbears

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MuhammadOusman/BullsAndBears/session"
)

// connectivityMessage is surfaced for transport-level failures where no HTTP
// status exists to classify.
const connectivityMessage = "Network error. Please check your connection."

// Client defines a public type used by bullsbears APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Client is the single path to the trading backend: every facade method
// funnels through one request pipeline that attaches the bearer token, tags
// the request, classifies the outcome, and emits an audit event.
type Client struct {
	config   Config
	http     *http.Client
	baseURL  string
	sessions *session.Manager
	audit    *auditDispatcher
}

// Sessions returns the session manager the client authenticates with.
func (c *Client) Sessions() *session.Manager {
	return c.sessions
}

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// Close flushes and stops the audit dispatcher. The client must not be used
// after Close.
func (c *Client) Close() {
	c.audit.Close()
}

/*
====================================
REQUEST PIPELINE
====================================
*/

// do runs one API call end to end. Success means the backend answered below
// 400 with a decodable envelope; the envelope's err flag is passed through
// untouched because some endpoints set it on legitimate empty results.
func (c *Client) do(ctx context.Context, op, method, endpoint string, body any) (*Envelope, error) {
	if c == nil || c.http == nil {
		return nil, ErrClientNotReady
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.config.API.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.API.UserAgent)
	}
	if token := c.sessions.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	envelope, status, err := c.roundTrip(req)
	c.emitAudit(ctx, op, method, endpoint, requestID, status, start, err)
	if err != nil {
		return nil, err
	}
	return envelope, nil
}

func (c *Client) roundTrip(req *http.Request) (*Envelope, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &APIError{Status: 0, Message: connectivityMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &APIError{Status: 0, Message: connectivityMessage}
	}

	var envelope Envelope
	decoded := json.Unmarshal(raw, &envelope) == nil

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: httpFallbackMessage(resp.StatusCode),
		}
		if decoded {
			apiErr.Body = &envelope
			if envelope.Message != "" {
				apiErr.Message = envelope.Message
			}
		}
		return nil, resp.StatusCode, apiErr
	}

	if !decoded {
		return nil, resp.StatusCode, &APIError{Status: 0, Message: connectivityMessage}
	}
	return &envelope, resp.StatusCode, nil
}

func httpFallbackMessage(status int) string {
	text := http.StatusText(status)
	if text == "" {
		text = "Unknown Error"
	}
	return fmt.Sprintf("HTTP %d: %s", status, text)
}

func (c *Client) emitAudit(ctx context.Context, op, method, endpoint, requestID string, status int, start time.Time, callErr error) {
	if c.audit == nil {
		return
	}
	event := AuditEvent{
		Timestamp:  time.Now().UTC(),
		Operation:  op,
		Method:     method,
		Endpoint:   endpoint,
		RequestID:  requestID,
		Status:     status,
		DurationMS: time.Since(start).Milliseconds(),
		Success:    callErr == nil,
	}
	if callErr != nil {
		event.Error = callErr.Error()
	}
	c.audit.Emit(ctx, event)
}

/*
====================================
METHOD SUGAR
====================================
*/

func (c *Client) get(ctx context.Context, op, endpoint string) (*Envelope, error) {
	return c.do(ctx, op, http.MethodGet, endpoint, nil)
}

func (c *Client) post(ctx context.Context, op, endpoint string, body any) (*Envelope, error) {
	return c.do(ctx, op, http.MethodPost, endpoint, body)
}

func (c *Client) put(ctx context.Context, op, endpoint string, body any) (*Envelope, error) {
	return c.do(ctx, op, http.MethodPut, endpoint, body)
}

func (c *Client) patch(ctx context.Context, op, endpoint string, body any) (*Envelope, error) {
	return c.do(ctx, op, http.MethodPatch, endpoint, body)
}

func (c *Client) delete(ctx context.Context, op, endpoint string) (*Envelope, error) {
	return c.do(ctx, op, http.MethodDelete, endpoint, nil)
}
