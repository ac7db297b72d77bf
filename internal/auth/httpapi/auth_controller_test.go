package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

var _ = Describe("AuthController", func() {
	var (
		ctrl       *gomock.Controller
		mockRepo   *mockusecases.MockUserRepository
		router     *http.ServeMux
		recorder   *httptest.ResponseRecorder
		storedUser domain.User
	)

	noLimit := func(next http.Handler) http.Handler { return next }

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepo = mockusecases.NewMockUserRepository(ctrl)

		userService := usecases.NewUserService(mockRepo)
		tokens, err := security.NewTokenService("test-secret", "atlas-cms", time.Hour)
		Expect(err).NotTo(HaveOccurred())
		revocations, err := cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		sessionService := usecases.NewSessionService(userService, tokens, revocations)
		guard := httpapi.NewSessionGuard(sessionService)

		controller := httpapi.NewAuthController(userService, sessionService, guard, noLimit)
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()

		hash, err := security.HashPassword("password123")
		Expect(err).NotTo(HaveOccurred())
		storedUser, err = domain.NewUserBuilder().
			WithEmail("ada@example.com").
			WithName("Ada").
			WithRole(domain.RoleAdmin).
			WithPasswordHash(hash).
			Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	login := func() string {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(storedUser, nil)
		mockRepo.EXPECT().GetByID(gomock.Any(), storedUser.ID).Return(storedUser, nil)

		loginRecorder := httptest.NewRecorder()
		request := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"email":"ada@example.com","password":"password123"}`))
		router.ServeHTTP(loginRecorder, request)
		Expect(loginRecorder.Code).To(Equal(http.StatusOK))

		var response struct {
			Token string `json:"token"`
		}
		Expect(json.Unmarshal(loginRecorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Token).NotTo(BeEmpty())
		return response.Token
	}

	Context("register", func() {
		It("creates the first admin on a fresh instance", func() {
			mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			body := `{"email":"ada@example.com","name":"Ada","password":"password123"}`
			request := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["role"]).To(Equal("admin"))
		})

		It("returns 403 once bootstrapped", func() {
			mockRepo.EXPECT().Count(gomock.Any()).Return(int64(1), nil)

			body := `{"email":"eve@example.com","name":"Eve","password":"password123"}`
			request := httptest.NewRequest("POST", "/v1/auth/register", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})
	})

	Context("login", func() {
		It("returns a token and the user", func() {
			token := login()
			Expect(token).NotTo(BeEmpty())
		})

		It("maps bad credentials to 401", func() {
			mockRepo.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(storedUser, nil)

			body := `{"email":"ada@example.com","password":"wrong password"}`
			request := httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("me", func() {
		It("returns the current user for a valid session", func() {
			token := login()
			mockRepo.EXPECT().GetByID(gomock.Any(), storedUser.ID).Return(storedUser, nil)

			request := httptest.NewRequest("GET", "/v1/auth/me", nil)
			request.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["email"]).To(Equal("ada@example.com"))
		})

		It("rejects requests without a token", func() {
			request := httptest.NewRequest("GET", "/v1/auth/me", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("logout", func() {
		It("revokes the session so the token stops working", func() {
			token := login()

			logoutRequest := httptest.NewRequest("POST", "/v1/auth/logout", nil)
			logoutRequest.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(recorder, logoutRequest)
			Expect(recorder.Code).To(Equal(http.StatusNoContent))

			meRecorder := httptest.NewRecorder()
			meRequest := httptest.NewRequest("GET", "/v1/auth/me", nil)
			meRequest.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(meRecorder, meRequest)
			Expect(meRecorder.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
