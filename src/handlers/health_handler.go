package handlers

import (
	"budget-server/src/util"
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func Health(pool Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: map[string]string{"database": "ok"}}
		status := http.StatusOK
		if err := pool.Ping(ctx); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("health check failed")
			resp.Status = "unavailable"
			resp.Checks["database"] = "unreachable"
			status = http.StatusServiceUnavailable
		}

		util.WriteJSON(w, status, resp)
	}
}
