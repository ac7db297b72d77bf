package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/auth/httpapi/internal"
	"atlas-cms/internal/auth/usecases"
	"atlas-cms/internal/infra/httpserver"
)

const (
	createUserErrMessage     = "failed to create user"
	getUserErrMessage        = "failed to get user"
	listUsersErrMessage      = "failed to list users"
	deleteUserErrMessage     = "failed to delete user"
	userNotFoundErrMessage   = "user not found"
	userDuplicatedErrMessage = "user already exists"
	invalidRoleErrMessage    = "invalid role"
)

func NewUserController(service usecases.UserService, guard httpserver.Guard) *UserController {
	return &UserController{
		service: service,
		guard:   guard,
	}
}

var _ httpserver.Controller = &UserController{}

type UserController struct {
	service usecases.UserService
	guard   httpserver.Guard
}

func (c *UserController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/users", c.guard.RequireAdmin(c.listUsers()))
	router.Handle("POST /v1/users", c.guard.RequireAdmin(c.createUser()))
	router.Handle("GET /v1/users/{id}", c.guard.RequireAdmin(c.getUser()))
	router.Handle("DELETE /v1/users/{id}", c.guard.RequireAdmin(c.deleteUser()))
}

func (c *UserController) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		users, total, err := c.service.ListUsers(r.Context(), pagination)
		if err != nil {
			slog.Error("listing users", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listUsersErrMessage)
			return
		}

		responses := make([]internal.UserResponse, len(users))
		for i, user := range users {
			responses[i] = internal.ToUserResponse(user)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *UserController) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.UserCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, createUserErrMessage)
			return
		}

		role, err := domain.ParseRole(body.Role)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidRoleErrMessage)
			return
		}

		user, err := c.service.CreateUser(r.Context(), body.Email, body.Name, body.Password, role)
		if errors.Is(err, usecases.ErrUserDuplicated) {
			httpserver.ReplyWithError(w, http.StatusConflict, userDuplicatedErrMessage)
			return
		}
		if err != nil {
			slog.Error("creating user", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, createUserErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToUserResponse(user))
	}
}

func (c *UserController) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		user, err := c.service.GetUser(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrUserNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, userNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting user", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getUserErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToUserResponse(user))
	}
}

func (c *UserController) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		session, ok := SessionFromContext(r.Context())
		if ok && session.UserID.String() == id {
			httpserver.ReplyWithError(w, http.StatusConflict, "cannot delete the current user")
			return
		}

		err := c.service.DeleteUser(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrUserNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, userNotFoundErrMessage)
			return
		}
		if err != nil {
			slog.Error("deleting user", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, deleteUserErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
