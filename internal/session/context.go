package session

import "context"

type ctxKey struct{}

// WithID attaches the console session id to the context so downstream
// callers (notably the gateway client) can resolve the calling session
// without reaching into ambient state.
func WithID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sid)
}

// IDFromContext returns the session id attached to the context, if any.
func IDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(ctxKey{}).(string)
	return sid, ok && sid != ""
}
