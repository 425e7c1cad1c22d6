package planner

import "context"

type tabIDContextKey struct{}

// WithTabID attaches a browser-tab identifier to ctx. The client records it
// on audit events so multi-tab sessions can be told apart; it never affects
// authorization decisions.
func WithTabID(ctx context.Context, tabID string) context.Context {
	return context.WithValue(ctx, tabIDContextKey{}, tabID)
}

func tabIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	tabID, _ := ctx.Value(tabIDContextKey{}).(string)
	return tabID
}
