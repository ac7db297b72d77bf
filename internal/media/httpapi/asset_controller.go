package httpapi

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	authhttpapi "atlas-cms/internal/auth/httpapi"
	"atlas-cms/internal/infra/httpserver"
	"atlas-cms/internal/media/domain"
	"atlas-cms/internal/media/httpapi/internal"
	"atlas-cms/internal/media/usecases"
)

const (
	uploadAssetErrMessage        = "failed to upload asset"
	getAssetErrMessage           = "failed to get asset"
	listAssetsErrMessage         = "failed to list assets"
	deleteAssetErrMessage        = "failed to delete asset"
	assetNotFoundErrMessage      = "asset not found"
	missingFileErrMessage        = "multipart form must carry a file part"
	storageUnavailableErrMessage = "storage unavailable"
)

// defaultMaxUploadBytes caps multipart uploads at 32 MiB unless configured.
const defaultMaxUploadBytes = 32 << 20

func NewAssetController(service usecases.AssetService, guard httpserver.Guard, maxUploadBytes int64) *AssetController {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	return &AssetController{
		service:        service,
		guard:          guard,
		maxUploadBytes: maxUploadBytes,
	}
}

var _ httpserver.Controller = &AssetController{}

type AssetController struct {
	service        usecases.AssetService
	guard          httpserver.Guard
	maxUploadBytes int64
}

func (c *AssetController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/media", c.guard.RequireSession(c.listAssets()))
	router.Handle("POST /v1/media", c.guard.RequireAdmin(c.uploadAsset()))
	router.Handle("GET /v1/media/{id}", c.guard.RequireSession(c.getAsset()))
	router.Handle("GET /v1/media/{id}/file", c.guard.RequireSession(c.downloadAsset()))
	router.Handle("DELETE /v1/media/{id}", c.guard.RequireAdmin(c.deleteAsset()))
}

func (c *AssetController) uploadAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, missingFileErrMessage)
			return
		}
		defer file.Close()

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		cmd := usecases.UploadCommand{
			FileName: header.Filename,
			MimeType: mimeType,
			Content:  file,
		}
		if session, ok := authhttpapi.SessionFromContext(r.Context()); ok {
			cmd.UploadedBy = string(session.UserID)
		}

		asset, err := c.service.Upload(r.Context(), cmd)
		if errors.Is(err, domain.ErrEmptyFileName) || errors.Is(err, domain.ErrEmptyMimeType) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, uploadAssetErrMessage)
			return
		}
		if err != nil {
			slog.Error("uploading asset", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), uploadAssetErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToAssetResponse(asset))
	}
}

func (c *AssetController) getAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		asset, err := c.service.GetAsset(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrAssetNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, assetNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting asset", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), getAssetErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAssetResponse(asset))
	}
}

func (c *AssetController) downloadAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		asset, reader, err := c.service.OpenAsset(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrAssetNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, assetNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("opening asset", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), getAssetErrMessage)
			return
		}
		defer reader.Close()

		w.Header().Set("Content-Type", asset.MimeType)
		w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.FileName))

		if _, err := io.Copy(w, reader); err != nil {
			slog.Error("streaming asset", slog.String("error", err.Error()))
		}
	}
}

func (c *AssetController) listAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		assets, total, err := c.service.ListAssets(r.Context(), pagination)
		if err != nil {
			slog.Error("listing assets", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), listAssetsErrMessage)
			return
		}

		responses := make([]internal.AssetResponse, len(assets))
		for i, asset := range assets {
			responses[i] = internal.ToAssetResponse(asset)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, int(total), params)
	}
}

func (c *AssetController) deleteAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteAsset(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrAssetNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, assetNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("deleting asset", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, statusFromError(err), deleteAssetErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func statusFromError(err error) int {
	if errors.Is(err, usecases.ErrStorageUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
