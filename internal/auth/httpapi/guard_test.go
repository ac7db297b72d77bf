package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/auth/httpapi"
	"atlas-cms/internal/auth/security"
	"atlas-cms/internal/auth/usecases"
	"atlas-cms/internal/infra/cache"
	mockusecases "atlas-cms/test/unit/doubles/auth/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SessionGuard", func() {
	var (
		ctrl     *gomock.Controller
		mockRepo *mockusecases.MockUserRepository
		guard    *httpapi.SessionGuard
		tokens   *security.TokenService
		recorder *httptest.ResponseRecorder
	)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := httpapi.SessionFromContext(r.Context())
		Expect(ok).To(BeTrue())
		Expect(session.UserID).NotTo(BeEmpty())
		w.WriteHeader(http.StatusOK)
	})

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepo = mockusecases.NewMockUserRepository(ctrl)

		var err error
		tokens, err = security.NewTokenService("test-secret", "atlas-cms", time.Hour)
		Expect(err).NotTo(HaveOccurred())
		revocations, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())

		sessions := usecases.NewSessionService(usecases.NewUserService(mockRepo), tokens, revocations)
		guard = httpapi.NewSessionGuard(sessions)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	issueToken := func(role domain.Role) string {
		user, err := domain.NewUserBuilder().
			WithEmail("user@example.com").
			WithRole(role).
			Build()
		Expect(err).NotTo(HaveOccurred())

		token, _, err := tokens.Generate(user)
		Expect(err).NotTo(HaveOccurred())
		return token
	}

	Context("RequireSession", func() {
		It("passes a valid bearer token through", func() {
			request := httptest.NewRequest("GET", "/protected", nil)
			request.Header.Set("Authorization", "Bearer "+issueToken(domain.RoleEditor))

			guard.RequireSession(okHandler).ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("rejects a missing header", func() {
			request := httptest.NewRequest("GET", "/protected", nil)

			guard.RequireSession(okHandler).ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a malformed header", func() {
			request := httptest.NewRequest("GET", "/protected", nil)
			request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

			guard.RequireSession(okHandler).ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a tampered token", func() {
			request := httptest.NewRequest("GET", "/protected", nil)
			request.Header.Set("Authorization", "Bearer "+issueToken(domain.RoleEditor)+"tampered")

			guard.RequireSession(okHandler).ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("RequireAdmin", func() {
		It("passes an admin session through", func() {
			request := httptest.NewRequest("GET", "/admin", nil)
			request.Header.Set("Authorization", "Bearer "+issueToken(domain.RoleAdmin))

			guard.RequireAdmin(okHandler).ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("rejects an editor with 403", func() {
			request := httptest.NewRequest("GET", "/admin", nil)
			request.Header.Set("Authorization", "Bearer "+issueToken(domain.RoleEditor))

			guard.RequireAdmin(okHandler).ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("still requires a session first", func() {
			request := httptest.NewRequest("GET", "/admin", nil)

			guard.RequireAdmin(okHandler).ServeHTTP(recorder, request)
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
