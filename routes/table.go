// Package routes declares which navigation paths require an authenticated
// session and which role they are reserved for. The table is data, not
// handlers: hosts evaluate it before rendering or serving a path and act on
// the resulting decision.
package routes

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/MuhammadOusman/BullsAndBears/session"
)

// ErrTableFrozen is an exported constant or variable used by the route table.
var ErrTableFrozen = errors.New("route table frozen")

// Rule binds a path prefix to an access requirement. An empty Role with
// RequireAuth set admits any authenticated session.
type Rule struct {
	Prefix      string
	RequireAuth bool
	Role        string
}

// Decision is the outcome of evaluating a path against the table.
type Decision struct {
	Allowed bool
	// RedirectTo is the path to send the user to when Allowed is false.
	RedirectTo string
}

/*
====================================
TABLE
====================================
*/

// Table defines a public type used by bullsbears APIs.
//
// Table instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Registration happens once at startup; Freeze locks the table before it is
// shared, after which Match and Evaluate are lock-free reads.
type Table struct {
	mu        sync.Mutex
	frozen    bool
	rules     []Rule
	loginPath string
}

// NewTable creates an empty [Table]. Paths that match no rule are public.
// loginPath defaults to "/login" when empty.
func NewTable(loginPath string) *Table {
	if loginPath == "" {
		loginPath = "/login"
	}
	return &Table{loginPath: loginPath}
}

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
func (t *Table) Register(rule Rule) error {
	if !strings.HasPrefix(rule.Prefix, "/") {
		return errors.New("rule prefix must be an absolute path")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		return ErrTableFrozen
	}
	t.rules = append(t.rules, rule)
	return nil
}

// Freeze locks the table against further registration. Longer prefixes are
// ordered first so Match returns the most specific rule.
func (t *Table) Freeze() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.frozen {
		return
	}
	sort.SliceStable(t.rules, func(i, j int) bool {
		return len(t.rules[i].Prefix) > len(t.rules[j].Prefix)
	})
	t.frozen = true
}

// Match returns the most specific rule covering path, or false when the path
// is public. Prefixes match on whole segments: "/user" covers "/user/wallet"
// but not "/username".
func (t *Table) Match(path string) (Rule, bool) {
	for _, rule := range t.rules {
		if prefixMatches(path, rule.Prefix) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Evaluate resolves whether sess may visit path. Denials redirect to the
// login path; the table never distinguishes "not signed in" from "wrong
// role", matching how the backend's screens bounce both cases.
func (t *Table) Evaluate(sess session.Session, path string) Decision {
	rule, ok := t.Match(path)
	if !ok {
		return Decision{Allowed: true}
	}
	if rule.RequireAuth && !sess.Authenticated() {
		return Decision{RedirectTo: t.loginPath}
	}
	if rule.Role != "" && sess.Role != rule.Role {
		return Decision{RedirectTo: t.loginPath}
	}
	return Decision{Allowed: true}
}

func prefixMatches(path, prefix string) bool {
	if prefix == "/" {
		return true
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

/*
====================================
DEFAULT TABLE
====================================
*/

// DefaultTable returns the frozen route policy of the trading front end:
// the landing, login, and signup paths are public, /admin is reserved for
// admins, and /user (wallet and watchlist included) for regular users.
func DefaultTable(loginPath string) *Table {
	t := NewTable(loginPath)
	t.Register(Rule{Prefix: "/admin", RequireAuth: true, Role: "admin"})
	t.Register(Rule{Prefix: "/user", RequireAuth: true, Role: "user"})
	t.Freeze()
	return t
}
