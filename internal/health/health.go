// Package health contains a liveness handler.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// version is set via ldflags on build.
var version = "dev"

// GetVersion ...
func GetVersion() string {
	return version
}

// Pinger ...
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping ...
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Handler responds 200 with the service version when every pinger answers in
// time, 503 otherwise.
func Handler(timeout time.Duration, pp ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")

		for _, p := range pp {
			if err := p.Ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
				return
			}
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"version": version})
	}
}
