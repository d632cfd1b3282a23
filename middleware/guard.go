// Package middleware adapts the route policy table to net/http hosts that
// serve the trading front end. The guard evaluates each request path against
// the table and redirects denied requests to the login path before the
// wrapped handler runs.
package middleware

import (
	"context"
	"net/http"

	"github.com/MuhammadOusman/BullsAndBears/routes"
	"github.com/MuhammadOusman/BullsAndBears/session"
)

type sessionContextKey struct{}

// SessionFromContext returns the session record the guard attached to an
// allowed request.
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(session.Session)
	return sess, ok
}

// Guard wraps handlers with the route policy in table, reading the current
// session from mgr on every request. Denied requests are redirected with
// 303 See Other and never reach the wrapped handler.
func Guard(table *routes.Table, mgr *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if table == nil || mgr == nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			sess := mgr.Current()
			decision := table.Evaluate(sess, r.URL.Path)
			if !decision.Allowed {
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
