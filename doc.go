// Package bullsbears is the API access and session layer for the BullsAndBears
// trading platform. It wraps the platform's REST backend behind typed facades,
// a bearer-token session store, and a declarative route-guarding policy.
//
// The package is designed for single-session client workloads: Client methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build], and every outbound request reads the current session token.
//
// # Architecture boundaries
//
// bullsbears is the public surface. It exposes [Client], [Builder], [Config],
// and value types (Envelope, APIError, LoginData, etc.). Session persistence
// lives in the session subpackage, token-claims decoding in jwt, route policy
// in routes, and HTTP guarding in middleware.
//
// # What this package must NOT do
//
//   - Re-implement backend business logic (balances, pricing, approvals) —
//     those remain authoritative on the remote server.
//   - Retry, deduplicate, or time out requests on the caller's behalf; request
//     lifetimes belong to the caller's context.
//   - Reinterpret the backend's err flag on non-error statuses. The envelope
//     is returned verbatim and the call site classifies it.
//
// # Error contract
//
// Every transport or HTTP-status failure surfaces as a single classified
// [*APIError] carrying the numeric status (0 for connectivity failures) and
// the parsed response body when one exists. Local input validation failures
// surface as sentinel errors before any request leaves the process.
package bullsbears
