package session

// Session defines a public type used by bullsbears APIs.
//
// Session instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Authenticated reports whether a token is present. It never consults the
// backend; validity is established lazily by the next rejected request.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
