package controller

import (
	"context"
	"net/http"
	"strconv"
)

type contextKey string

const userIDKey contextKey = "userID"

// RequireUser reads the acting user from the X-User-ID header, set by the
// upstream auth gateway. Requests without it are rejected; authentication
// itself happens outside this service.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.Header.Get("X-User-ID"))
		if err != nil || id <= 0 {
			http.Error(w, "missing or invalid X-User-ID header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

func userID(r *http.Request) int {
	id, _ := r.Context().Value(userIDKey).(int)
	return id
}
