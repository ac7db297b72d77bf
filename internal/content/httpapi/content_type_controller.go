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
	createContentTypeErrMessage     = "failed to create content type"
	getContentTypeErrMessage        = "failed to get content type"
	listContentTypesErrMessage      = "failed to list content types"
	updateContentTypeErrMessage     = "failed to update content type"
	deleteContentTypeErrMessage     = "failed to delete content type"
	contentTypeNotFoundErrMessage   = "content type not found"
	contentTypeDuplicatedErrMessage = "content type already exists"
	contentTypeHasEntriesErrMessage = "content type still has entries"
	apiIdentifierFrozenErrMessage   = "api identifier cannot change once entries exist"
	invalidFieldErrMessage          = "invalid field definition"
	fieldNotFoundErrMessage         = "field not found"
	fieldDuplicatedErrMessage       = "field identifier already exists"
	storageUnavailableErrMessage    = "storage unavailable"
)

func NewContentTypeController(service usecases.ContentTypeService, guard httpserver.Guard) *ContentTypeController {
	return &ContentTypeController{
		service: service,
		guard:   guard,
	}
}

var _ httpserver.Controller = &ContentTypeController{}

type ContentTypeController struct {
	service usecases.ContentTypeService
	guard   httpserver.Guard
}

// AddRoutes registers the schema management surface. Reads need a session,
// schema changes need an admin.
func (c *ContentTypeController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/content-types", c.guard.RequireSession(c.listContentTypes()))
	router.Handle("POST /v1/content-types", c.guard.RequireAdmin(c.createContentType()))
	router.Handle("GET /v1/content-types/{id}", c.guard.RequireSession(c.getContentType()))
	router.Handle("PUT /v1/content-types/{id}", c.guard.RequireAdmin(c.updateContentType()))
	router.Handle("DELETE /v1/content-types/{id}", c.guard.RequireAdmin(c.deleteContentType()))
	router.Handle("POST /v1/content-types/{id}/fields", c.guard.RequireAdmin(c.addField()))
	router.Handle("DELETE /v1/content-types/{id}/fields/{identifier}", c.guard.RequireAdmin(c.removeField()))
}

func (c *ContentTypeController) listContentTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		summaries, total, err := c.service.ListContentTypes(r.Context(), pagination)
		if err != nil {
			slog.Error("listing content types", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), listContentTypesErrMessage)
			return
		}

		responses := make([]internal.ContentTypeResponse, len(summaries))
		for i, summary := range summaries {
			responses[i] = internal.ToContentTypeSummaryResponse(summary)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *ContentTypeController) createContentType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ContentTypeCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create content type request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, createContentTypeErrMessage)
			return
		}

		builder := domain.NewContentTypeBuilder().
			WithAPIIdentifier(body.APIIdentifier).
			WithName(body.Name).
			WithDescription(body.Description)

		for _, fieldRequest := range body.Fields {
			field, err := fieldRequest.ToDomain()
			if err != nil {
				httpserver.ReplyWithError(w, http.StatusBadRequest, invalidFieldErrMessage)
				return
			}
			builder.WithField(field)
		}

		contentType, err := builder.Build()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		err = c.service.CreateContentType(r.Context(), contentType)
		if errors.Is(err, usecases.ErrContentTypeDuplicated) {
			httpserver.ReplyWithError(w, http.StatusConflict, contentTypeDuplicatedErrMessage)
			return
		}
		if err != nil {
			slog.Error("creating content type", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), createContentTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToContentTypeResponse(contentType))
	}
}

func (c *ContentTypeController) getContentType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		contentType, err := c.service.GetContentType(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrContentTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, contentTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting content type", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), getContentTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContentTypeResponse(contentType))
	}
}

func (c *ContentTypeController) updateContentType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.ContentTypeUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, updateContentTypeErrMessage)
			return
		}

		contentType, err := c.service.GetContentType(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrContentTypeNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, contentTypeNotFoundErrMessage)
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, statusFromError(err), updateContentTypeErrMessage)
			return
		}

		if body.APIIdentifier != "" {
			contentType.APIIdentifier = body.APIIdentifier
		}
		if body.Name != "" {
			contentType.Name = body.Name
		}
		contentType.Description = body.Description

		err = c.service.UpdateContentType(r.Context(), contentType)
		switch {
		case errors.Is(err, usecases.ErrAPIIdentifierImmutable):
			httpserver.ReplyWithError(w, http.StatusConflict, apiIdentifierFrozenErrMessage)
			return
		case errors.Is(err, usecases.ErrContentTypeDuplicated):
			httpserver.ReplyWithError(w, http.StatusConflict, contentTypeDuplicatedErrMessage)
			return
		case err != nil:
			slog.Error("updating content type", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), updateContentTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContentTypeResponse(contentType))
	}
}

func (c *ContentTypeController) deleteContentType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteContentType(r.Context(), domain.ID(id))
		switch {
		case errors.Is(err, usecases.ErrContentTypeNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, contentTypeNotFoundErrMessage)
			return
		case errors.Is(err, usecases.ErrContentTypeHasEntries):
			httpserver.ReplyWithError(w, http.StatusConflict, contentTypeHasEntriesErrMessage)
			return
		case err != nil:
			slog.Error("deleting content type", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), deleteContentTypeErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *ContentTypeController) addField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.FieldRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidFieldErrMessage)
			return
		}

		field, err := body.ToDomain()
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidFieldErrMessage)
			return
		}

		contentType, err := c.service.AddField(r.Context(), domain.ID(id), field)
		switch {
		case errors.Is(err, usecases.ErrContentTypeNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, contentTypeNotFoundErrMessage)
			return
		case errors.Is(err, domain.ErrDuplicateFieldIdentifier):
			httpserver.ReplyWithError(w, http.StatusConflict, fieldDuplicatedErrMessage)
			return
		case err != nil:
			slog.Error("adding field", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), updateContentTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContentTypeResponse(contentType))
	}
}

func (c *ContentTypeController) removeField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		identifier := r.PathValue("identifier")

		contentType, err := c.service.RemoveField(r.Context(), domain.ID(id), identifier)
		switch {
		case errors.Is(err, usecases.ErrContentTypeNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, contentTypeNotFoundErrMessage)
			return
		case errors.Is(err, domain.ErrFieldNotFound):
			httpserver.ReplyWithError(w, http.StatusNotFound, fieldNotFoundErrMessage)
			return
		case err != nil:
			slog.Error("removing field", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), updateContentTypeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToContentTypeResponse(contentType))
	}
}

// statusFromError maps storage outages to 503 so callers can tell them apart
// from plain server bugs.
func statusFromError(err error) int {
	if errors.Is(err, usecases.ErrStorageUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
