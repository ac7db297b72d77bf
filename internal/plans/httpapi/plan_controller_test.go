package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"atlas-cms/internal/plans/domain"
	"atlas-cms/internal/plans/httpapi"
	"atlas-cms/internal/plans/usecases"
	mockusecases "atlas-cms/test/unit/doubles/plans/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("PlanController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockPlanService
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockPlanService(ctrl)

		controller := httpapi.NewPlanController(mockService, allowAllGuard{})
		router = http.NewServeMux()
		controller.AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	samplePlan := domain.Plan{
		ID:           "7c1a2b3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
		Slug:         "andes-trek",
		Title:        "Andes Trek",
		Destination:  "Peru",
		DurationDays: 7,
		Price:        1490,
		Currency:     "USD",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	Context("create", func() {
		It("replies 201 with the new plan", func() {
			mockService.EXPECT().
				CreatePlan(gomock.Any(), gomock.Any()).
				Return(nil)

			body := `{"slug":"andes-trek","title":"Andes Trek","destination":"Peru","duration_days":7,"price":1490,"currency":"USD"}`
			request := httptest.NewRequest("POST", "/v1/plans", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["slug"]).To(Equal("andes-trek"))
		})

		It("rejects an invalid slug with 400", func() {
			body := `{"slug":"Not A Slug","title":"Andes Trek","duration_days":7,"price":1490,"currency":"USD"}`
			request := httptest.NewRequest("POST", "/v1/plans", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a duplicated slug to 409", func() {
			mockService.EXPECT().
				CreatePlan(gomock.Any(), gomock.Any()).
				Return(usecases.ErrPlanDuplicated)

			body := `{"slug":"andes-trek","title":"Andes Trek","duration_days":7,"price":1490,"currency":"USD"}`
			request := httptest.NewRequest("POST", "/v1/plans", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})
	})

	Context("get", func() {
		It("resolves by id", func() {
			mockService.EXPECT().
				GetPlan(gomock.Any(), samplePlan.ID).
				Return(samplePlan, nil)

			request := httptest.NewRequest("GET", "/v1/plans/"+samplePlan.ID.String(), nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("resolves by slug", func() {
			mockService.EXPECT().
				GetPlanBySlug(gomock.Any(), "andes-trek").
				Return(samplePlan, nil)

			request := httptest.NewRequest("GET", "/v1/plans/slug/andes-trek", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["id"]).To(Equal(samplePlan.ID.String()))
		})

		It("maps a missing plan to 404", func() {
			mockService.EXPECT().
				GetPlan(gomock.Any(), domain.ID("missing")).
				Return(domain.Plan{}, usecases.ErrPlanNotFound)

			request := httptest.NewRequest("GET", "/v1/plans/missing", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("list", func() {
		It("passes the published filter through", func() {
			mockService.EXPECT().
				ListPlans(gomock.Any(), usecases.ListFilter{PublishedOnly: true}, usecases.Pagination{Limit: 20, Offset: 0}).
				Return([]domain.Plan{samplePlan}, int64(1), nil)

			request := httptest.NewRequest("GET", "/v1/plans?published=true", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response struct {
				Data       []map[string]any `json:"data"`
				Pagination map[string]any   `json:"pagination"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Pagination["total"]).To(Equal(float64(1)))
		})
	})

	Context("update", func() {
		It("applies a partial update", func() {
			updated := samplePlan
			updated.Title = "Andes Grand Trek"
			mockService.EXPECT().
				UpdatePlan(gomock.Any(), samplePlan.ID, gomock.Any()).
				DoAndReturn(func(_ any, _ domain.ID, update usecases.PlanUpdate) (domain.Plan, error) {
					Expect(update.Title).ToNot(BeNil())
					Expect(*update.Title).To(Equal("Andes Grand Trek"))
					Expect(update.Price).To(BeNil())
					return updated, nil
				})

			body := `{"title":"Andes Grand Trek"}`
			request := httptest.NewRequest("PATCH", "/v1/plans/"+samplePlan.ID.String(), strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("maps a domain validation failure to 400", func() {
			mockService.EXPECT().
				UpdatePlan(gomock.Any(), samplePlan.ID, gomock.Any()).
				Return(domain.Plan{}, domain.ErrInvalidDuration)

			body := `{"duration_days":0}`
			request := httptest.NewRequest("PATCH", "/v1/plans/"+samplePlan.ID.String(), strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("publish", func() {
		It("publishes through POST", func() {
			published := samplePlan
			published.Published = true
			mockService.EXPECT().
				PublishPlan(gomock.Any(), samplePlan.ID).
				Return(published, nil)

			request := httptest.NewRequest("POST", "/v1/plans/"+samplePlan.ID.String()+"/publish", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["published"]).To(BeTrue())
		})

		It("unpublishes through POST", func() {
			mockService.EXPECT().
				UnpublishPlan(gomock.Any(), samplePlan.ID).
				Return(samplePlan, nil)

			request := httptest.NewRequest("POST", "/v1/plans/"+samplePlan.ID.String()+"/unpublish", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("archive", func() {
		It("replies 204 on success", func() {
			mockService.EXPECT().
				ArchivePlan(gomock.Any(), samplePlan.ID).
				Return(nil)

			request := httptest.NewRequest("DELETE", "/v1/plans/"+samplePlan.ID.String(), nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("maps storage unavailability to 503", func() {
			mockService.EXPECT().
				ArchivePlan(gomock.Any(), samplePlan.ID).
				Return(usecases.ErrStorageUnavailable)

			request := httptest.NewRequest("DELETE", "/v1/plans/"+samplePlan.ID.String(), nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})
})
