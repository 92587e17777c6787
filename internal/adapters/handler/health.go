package handler

import (
	"context"
	"net/http"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports 200 while the database answers a ping.
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, &APIError{
				Code:    "UNHEALTHY",
				Message: err.Error(),
			})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
