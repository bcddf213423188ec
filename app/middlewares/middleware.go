package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/storefront-go/storefront/app/utils/sessions"
)

type contextKey string

const userIDKey contextKey = "user_id"

// CurrentUser resolves the session user once per request and stores the id
// in the request context. Handlers read it with UserID and pass it
// explicitly into service calls; nothing downstream touches the session.
func CurrentUser(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID := store.GetUserID(r); userID != "" {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserID returns the current user id, or "" for anonymous requests.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// RequireUser rejects anonymous requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r.Context()) == "" {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MethodOverride lets HTML forms express PUT and DELETE through a _method
// field on a POST.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_ = r.ParseForm()
			if override := r.Form.Get("_method"); override != "" {
				r.Method = strings.ToUpper(override)
			}
		}
		next.ServeHTTP(w, r)
	})
}
