package agent

import "context"

type sessionKey struct{}

// DefaultSession is used when a request carries no conversation identifier.
const DefaultSession = "default"

// WithSession tags a request context with its conversation identifier. Tools
// that keep per-conversation state (the pending-payment slot) key on it.
func WithSession(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionFrom returns the conversation identifier for the request, or
// DefaultSession.
func SessionFrom(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok && id != "" {
		return id
	}
	return DefaultSession
}
