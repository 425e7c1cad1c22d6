package middleware

import (
	"net/http"

	planner "github.com/shahriyarnawaz/Planner"
)

// Guard authorizes every request path against the client's route table and
// session state before the view handler runs. Redirect verdicts become a
// 303 response; render verdicts pass through untouched.
func Guard(client *planner.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verdict := client.Authorize(r.Context(), r.URL.Path)
			if verdict.Decision != planner.DecisionRender {
				http.Redirect(w, r, verdict.RedirectTo, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Track records each served navigation as the remembered last page and
// sweeps expired sessions on the way in. A sweep on a protected path
// short-circuits to the login redirect before the handler runs.
func Track(client *planner.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verdict := client.ObservePath(r.Context(), r.URL.Path)
			if verdict.Decision != planner.DecisionRender {
				http.Redirect(w, r, verdict.RedirectTo, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
