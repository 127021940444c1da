package middleware

import (
	"context"
	"net/http"

	"github.com/arslanameen227/Malik-MoneyFlow/internal/models"
)

type sessionSource interface {
	Current(ctx context.Context) (*models.Session, error)
}

type Middleware struct {
	Sessions sessionSource
}

func NewMiddleware(sessions sessionSource) *Middleware {
	return &Middleware{Sessions: sessions}
}

// context key
type contextKey string

const UIDKey contextKey = "uid"

// RequireSession guards routes behind the persisted sign-in. Unlike a
// token-verifying gateway this never calls out to the network on the hot
// path; the session lives in the local store and an expired one is only
// refreshed when connectivity allows.
func (m *Middleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Sessions.Current(r.Context())
		if err != nil {
			http.Error(w, "sign in required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UIDKey, sess.UID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Helper to extract UID
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}
