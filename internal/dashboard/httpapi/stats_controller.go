package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"atlas-cms/internal/dashboard/usecases"
	"atlas-cms/internal/infra/httpserver"
)

const (
	collectStatsErrMessage       = "failed to collect stats"
	storageUnavailableErrMessage = "storage unavailable"
)

func NewStatsController(service usecases.StatsService, guard httpserver.Guard) *StatsController {
	return &StatsController{
		service: service,
		guard:   guard,
	}
}

var _ httpserver.Controller = &StatsController{}

type StatsController struct {
	service usecases.StatsService
	guard   httpserver.Guard
}

func (c *StatsController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/dashboard/stats", c.guard.RequireAdmin(c.collectStats()))
}

func (c *StatsController) collectStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := c.service.CollectStats(r.Context())
		if errors.Is(err, usecases.ErrStorageUnavailable) {
			httpserver.ReplyWithError(w, http.StatusServiceUnavailable, storageUnavailableErrMessage)
			return
		}
		if err != nil {
			slog.Error("collecting stats", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, collectStatsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, stats)
	}
}
