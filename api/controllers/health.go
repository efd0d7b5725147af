package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/alessaops/storefront-backend/api/responses"
	"github.com/alessaops/storefront-backend/pkg/config"
	"github.com/alessaops/storefront-backend/pkg/db"
	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/alessaops/storefront-backend/pkg/redis"
)

const readyCheckTimeout = 3 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		checks := map[string]string{}
		ready := true

		checks["db"] = "ok"
		if dbP == nil {
			checks["db"] = "not configured"
			ready = false
		} else if err := dbP.Ping(ctx); err != nil {
			checks["db"] = err.Error()
			ready = false
		}

		checks["redis"] = "ok"
		if redisP == nil {
			checks["redis"] = "not configured"
			ready = false
		} else if err := redisP.Ping(ctx); err != nil {
			checks["redis"] = err.Error()
			ready = false
		}

		status := "ready"
		httpStatus := http.StatusOK
		if !ready {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
			if logg != nil {
				logg.Warn(logg.WithField(ctx, "checks", checks), "readiness check failed")
			}
		}

		responses.WriteSuccessStatus(w, httpStatus, map[string]any{
			"status": status,
			"checks": checks,
		})
	}
}
