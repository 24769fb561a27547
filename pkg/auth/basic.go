package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
)

var (
	ErrMissingCredentials = errors.New("missing basic credentials")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// BasicAuth guards handlers with HTTP basic credentials.
type BasicAuth struct {
	realm string
	users map[string]string
}

func NewBasicAuth(realm string, users map[string]string) *BasicAuth {
	if users == nil {
		users = make(map[string]string)
	}
	return &BasicAuth{realm: realm, users: users}
}

// Enabled reports whether any user is registered.
func (ba *BasicAuth) Enabled() bool {
	return len(ba.users) > 0
}

// Authenticate returns the user named in the request's Authorization header.
func (ba *BasicAuth) Authenticate(r *http.Request) (string, error) {
	username, password, ok := r.BasicAuth()
	if !ok {
		return "", ErrMissingCredentials
	}

	stored, exists := ba.users[username]
	if !exists || subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return "", ErrInvalidCredentials
	}

	return username, nil
}

// Middleware rejects requests without valid credentials and stores the user in the request context.
func (ba *BasicAuth) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, err := ba.Authenticate(r)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+ba.realm+`"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next(w, r.WithContext(WithUser(r.Context(), username)))
	}
}
