// Package session holds the client-side session record for the BullsAndBears
// API client: the bearer token and the role it was issued for, collapsed into
// a single persisted value with one read/write path.
//
// Authentication here is a local, optimistic signal. A stored token means the
// caller intends to be treated as authenticated; actual validity is only
// discovered when the backend rejects a request.
package session
