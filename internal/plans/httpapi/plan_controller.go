package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"atlas-cms/internal/infra/httpserver"
	"atlas-cms/internal/plans/domain"
	"atlas-cms/internal/plans/httpapi/internal"
	"atlas-cms/internal/plans/usecases"
)

const (
	createPlanErrMessage         = "failed to create plan"
	getPlanErrMessage            = "failed to get plan"
	listPlansErrMessage          = "failed to list plans"
	updatePlanErrMessage         = "failed to update plan"
	archivePlanErrMessage        = "failed to archive plan"
	planNotFoundErrMessage       = "plan not found"
	planDuplicatedErrMessage     = "plan slug already exists"
	storageUnavailableErrMessage = "storage unavailable"
)

func NewPlanController(service usecases.PlanService, guard httpserver.Guard) *PlanController {
	return &PlanController{
		service: service,
		guard:   guard,
	}
}

var _ httpserver.Controller = &PlanController{}

type PlanController struct {
	service usecases.PlanService
	guard   httpserver.Guard
}

func (c *PlanController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/plans", c.guard.RequireSession(c.listPlans()))
	router.Handle("POST /v1/plans", c.guard.RequireAdmin(c.createPlan()))
	router.Handle("GET /v1/plans/{id}", c.guard.RequireSession(c.getPlan()))
	router.Handle("GET /v1/plans/slug/{slug}", c.guard.RequireSession(c.getPlanBySlug()))
	router.Handle("PATCH /v1/plans/{id}", c.guard.RequireAdmin(c.updatePlan()))
	router.Handle("POST /v1/plans/{id}/publish", c.guard.RequireAdmin(c.setPublished(true)))
	router.Handle("POST /v1/plans/{id}/unpublish", c.guard.RequireAdmin(c.setPublished(false)))
	router.Handle("DELETE /v1/plans/{id}", c.guard.RequireAdmin(c.archivePlan()))
}

func (c *PlanController) createPlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request internal.PlanCreateRequest
		err := httpserver.DecodeJSONBody(r, &request)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createPlanErrMessage)
			return
		}

		plan, err := request.ToDomain()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreatePlan(r.Context(), plan)
		if errors.Is(err, usecases.ErrPlanDuplicated) {
			httpserver.ReplyWithError(w, http.StatusConflict, planDuplicatedErrMessage)
			return
		}
		if err != nil {
			slog.Error("creating plan", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), createPlanErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToPlanResponse(plan))
	}
}

func (c *PlanController) getPlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		plan, err := c.service.GetPlan(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrPlanNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, planNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting plan", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), getPlanErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPlanResponse(plan))
	}
}

func (c *PlanController) getPlanBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")

		plan, err := c.service.GetPlanBySlug(r.Context(), slug)
		if errors.Is(err, usecases.ErrPlanNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, planNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting plan by slug", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), getPlanErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPlanResponse(plan))
	}
}

func (c *PlanController) listPlans() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}
		filter := usecases.ListFilter{
			PublishedOnly: r.URL.Query().Get("published") == "true",
		}

		plans, total, err := c.service.ListPlans(r.Context(), filter, pagination)
		if err != nil {
			slog.Error("listing plans", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), listPlansErrMessage)
			return
		}

		responses := make([]internal.PlanResponse, len(plans))
		for i, plan := range plans {
			responses[i] = internal.ToPlanResponse(plan)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, int(total), params)
	}
}

func (c *PlanController) updatePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var request internal.PlanUpdateRequest
		err := httpserver.DecodeJSONBody(r, &request)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updatePlanErrMessage)
			return
		}

		plan, err := c.service.UpdatePlan(r.Context(), domain.ID(id), usecases.PlanUpdate{
			Title:        request.Title,
			Summary:      request.Summary,
			Destination:  request.Destination,
			DurationDays: request.DurationDays,
			Price:        request.Price,
			Currency:     request.Currency,
			CoverAssetID: request.CoverAssetID,
		})
		if err != nil {
			c.replyPlanError(w, err, updatePlanErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPlanResponse(plan))
	}
}

func (c *PlanController) setPublished(published bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var plan domain.Plan
		var err error
		if published {
			plan, err = c.service.PublishPlan(r.Context(), domain.ID(id))
		} else {
			plan, err = c.service.UnpublishPlan(r.Context(), domain.ID(id))
		}
		if err != nil {
			c.replyPlanError(w, err, updatePlanErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPlanResponse(plan))
	}
}

func (c *PlanController) archivePlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.ArchivePlan(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrPlanNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, planNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("archiving plan", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), archivePlanErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *PlanController) replyPlanError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecases.ErrPlanNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, planNotFoundErrMessage)
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrInvalidCurrency):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("plan operation failed", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, statusFromError(err), fallback)
	}
}

func statusFromError(err error) int {
	if errors.Is(err, usecases.ErrStorageUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
