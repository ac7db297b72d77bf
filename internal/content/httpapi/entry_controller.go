package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"atlas-cms/internal/content/domain"
	"atlas-cms/internal/content/httpapi/internal"
	"atlas-cms/internal/content/usecases"
	"atlas-cms/internal/infra/httpserver"
)

const (
	createEntryErrMessage     = "failed to create entry"
	getEntryErrMessage        = "failed to get entry"
	listEntriesErrMessage     = "failed to list entries"
	updateEntryErrMessage     = "failed to update entry"
	deleteEntryErrMessage     = "failed to delete entry"
	entryNotFoundErrMessage   = "entry not found"
	entryValidationErrMessage = "entry validation failed"
)

func NewEntryController(service usecases.EntryService, guard httpserver.Guard) *EntryController {
	return &EntryController{
		service: service,
		guard:   guard,
	}
}

var _ httpserver.Controller = &EntryController{}

type EntryController struct {
	service usecases.EntryService
	guard   httpserver.Guard
}

// AddRoutes registers the entry surface. Reads need a session, writes are
// admin-only like every other mutation of the content core.
func (c *EntryController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/content-types/{id}/entries", c.guard.RequireSession(c.listEntries()))
	router.Handle("POST /v1/content-types/{id}/entries", c.guard.RequireAdmin(c.createEntry()))
	router.Handle("GET /v1/content-types/{id}/entries/{entryId}", c.guard.RequireSession(c.getEntry()))
	router.Handle("PATCH /v1/content-types/{id}/entries/{entryId}", c.guard.RequireAdmin(c.updateEntry()))
	router.Handle("DELETE /v1/content-types/{id}/entries/{entryId}", c.guard.RequireAdmin(c.deleteEntry()))
}

func (c *EntryController) listEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentTypeID := r.PathValue("id")

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		entries, total, err := c.service.ListEntries(r.Context(), domain.ID(contentTypeID), pagination)
		if errors.Is(err, usecases.ErrContentTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, contentTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("listing entries", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), listEntriesErrMessage)
			return
		}

		responses := make([]internal.EntryResponse, len(entries))
		for i, entry := range entries {
			responses[i] = internal.ToEntryResponse(entry)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *EntryController) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentTypeID := r.PathValue("id")

		var payload domain.EntryData
		err := httpserver.DecodeJSONBody(r, &payload)
		if err != nil {
			slog.Error("decoding create entry request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, createEntryErrMessage)
			return
		}

		entry, err := c.service.CreateEntry(r.Context(), domain.ID(contentTypeID), payload)
		if err != nil {
			c.replyEntryError(w, err, createEntryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToEntryResponse(entry))
	}
}

func (c *EntryController) getEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentTypeID := r.PathValue("id")
		entryID := r.PathValue("entryId")

		entry, err := c.service.GetEntry(r.Context(), domain.ID(contentTypeID), domain.ID(entryID))
		if errors.Is(err, usecases.ErrEntryNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, entryNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting entry", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), getEntryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToEntryResponse(entry))
	}
}

func (c *EntryController) updateEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentTypeID := r.PathValue("id")
		entryID := r.PathValue("entryId")

		var partial domain.EntryData
		err := httpserver.DecodeJSONBody(r, &partial)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateEntryErrMessage)
			return
		}

		entry, err := c.service.UpdateEntry(r.Context(), domain.ID(contentTypeID), domain.ID(entryID), partial)
		if err != nil {
			c.replyEntryError(w, err, updateEntryErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToEntryResponse(entry))
	}
}

func (c *EntryController) deleteEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentTypeID := r.PathValue("id")
		entryID := r.PathValue("entryId")

		err := c.service.DeleteEntry(r.Context(), domain.ID(contentTypeID), domain.ID(entryID))
		if errors.Is(err, usecases.ErrEntryNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, entryNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("deleting entry", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), deleteEntryErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// replyEntryError renders validation failures as a 422 carrying the full
// error list; everything else falls back to the usual status mapping.
func (c *EntryController) replyEntryError(w http.ResponseWriter, err error, fallback string) {
	var validationErrs domain.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		httpserver.ReplyWithErrorList(w, http.StatusUnprocessableEntity, entryValidationErrMessage, validationErrs)
	case errors.Is(err, usecases.ErrContentTypeNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, contentTypeNotFoundErrMessage)
	case errors.Is(err, usecases.ErrEntryNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, entryNotFoundErrMessage)
	default:
		slog.Error("entry operation failed", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, statusFromError(err), fallback)
	}
}
