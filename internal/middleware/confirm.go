package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

type ctxKey string

const confirmedKey ctxKey = "confirmed"

// RequireConfirmation corta con 428 las operaciones destructivas que no traen
// ?confirm=true ni el header X-Confirm: true. Si la trae, la marca en el contexto.
func RequireConfirmation(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isConfirmed(r) {
			http.Error(w, "confirmation required: add ?confirm=true or X-Confirm: true", http.StatusPreconditionRequired)
			return
		}
		ctx := context.WithValue(r.Context(), confirmedKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Confirmed indica si el request pasó por RequireConfirmation.
func Confirmed(ctx context.Context) bool {
	v, ok := ctx.Value(confirmedKey).(bool)
	return ok && v
}

func isConfirmed(r *http.Request) bool {
	if truthy(r.URL.Query().Get("confirm")) {
		return true
	}
	return truthy(r.Header.Get("X-Confirm"))
}

func truthy(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
