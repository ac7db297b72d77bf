package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"atlas-cms/internal/auth/httpapi/internal"
	"atlas-cms/internal/auth/usecases"
	"atlas-cms/internal/infra/httpserver"
)

const (
	registerErrMessage           = "failed to register"
	registrationClosedErrMessage = "registration is closed"
	loginErrMessage              = "failed to login"
	invalidCredentialsErrMessage = "invalid credentials"
	logoutErrMessage             = "failed to logout"
	getMeErrMessage              = "failed to get current user"
)

type Middleware func(http.Handler) http.Handler

func NewAuthController(users usecases.UserService, sessions usecases.SessionService, guard httpserver.Guard, loginLimiter Middleware) *AuthController {
	return &AuthController{
		users:        users,
		sessions:     sessions,
		guard:        guard,
		loginLimiter: loginLimiter,
	}
}

var _ httpserver.Controller = &AuthController{}

type AuthController struct {
	users        usecases.UserService
	sessions     usecases.SessionService
	guard        httpserver.Guard
	loginLimiter Middleware
}

func (c *AuthController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/auth/register", c.register())
	router.Handle("POST /v1/auth/login", c.loginLimiter(c.login()))
	router.Handle("POST /v1/auth/logout", c.guard.RequireSession(c.logout()))
	router.Handle("GET /v1/auth/me", c.guard.RequireSession(c.me()))
}

// register only works on a fresh instance: the created account is the first
// admin and the endpoint closes itself as soon as any user exists.
func (c *AuthController) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RegisterRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, registerErrMessage)
			return
		}

		user, err := c.users.RegisterFirstAdmin(r.Context(), body.Email, body.Name, body.Password)
		if errors.Is(err, usecases.ErrRegistrationClosed) {
			httpserver.ReplyWithError(w, http.StatusForbidden, registrationClosedErrMessage)
			return
		}
		if err != nil {
			slog.Error("registering first admin", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, registerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToUserResponse(user))
	}
}

func (c *AuthController) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.LoginRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, loginErrMessage)
			return
		}

		token, session, err := c.sessions.Login(r.Context(), body.Email, body.Password)
		if errors.Is(err, usecases.ErrInvalidCredentials) {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, invalidCredentialsErrMessage)
			return
		}
		if err != nil {
			slog.Error("logging in", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, loginErrMessage)
			return
		}

		user, err := c.users.GetUser(r.Context(), session.UserID)
		if err != nil {
			slog.Error("loading user after login", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, loginErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.LoginResponse{
			Token:     token,
			ExpiresAt: session.ExpiresAt,
			User:      internal.ToUserResponse(user),
		})
	}
}

func (c *AuthController) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, invalidSessionErrMessage)
			return
		}

		err := c.sessions.Revoke(r.Context(), session)
		if err != nil {
			slog.Error("revoking session", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, logoutErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *AuthController) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, invalidSessionErrMessage)
			return
		}

		user, err := c.users.GetUser(r.Context(), session.UserID)
		if errors.Is(err, usecases.ErrUserNotFound) {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, invalidSessionErrMessage)
			return
		}
		if err != nil {
			slog.Error("getting current user", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, getMeErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToUserResponse(user))
	}
}
