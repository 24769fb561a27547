package auth

import "context"

type ContextKey string

const UserContextKey ContextKey = "authenticated_user"

func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, UserContextKey, username)
}

// UserFromContext returns the user set by Middleware, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UserContextKey).(string)
	return username, ok
}
