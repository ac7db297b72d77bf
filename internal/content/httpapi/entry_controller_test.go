package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"atlas-cms/internal/content/domain"
	"atlas-cms/internal/content/httpapi"
	"atlas-cms/internal/content/usecases"
	mockusecases "atlas-cms/test/unit/doubles/content/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("EntryController", func() {
	var (
		controller  *httpapi.EntryController
		mockService *mockusecases.MockEntryService
		ctrl        *gomock.Controller
		recorder    *httptest.ResponseRecorder
		router      *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockEntryService(ctrl)
		controller = httpapi.NewEntryController(mockService, allowAllGuard{})
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newEntry := func() domain.Entry {
		entry, err := domain.NewEntryBuilder().
			WithContentTypeID(domain.ID("ct-1")).
			WithData(domain.EntryData{"title": "Hello"}).
			Build()
		Expect(err).NotTo(HaveOccurred())
		return entry
	}

	Context("createEntry", func() {
		It("returns 201 with the stored entry", func() {
			entry := newEntry()
			mockService.EXPECT().
				CreateEntry(gomock.Any(), domain.ID("ct-1"), domain.EntryData{"title": "Hello"}).
				Return(entry, nil)

			body := `{"title":"Hello"}`
			request := httptest.NewRequest("POST", "/v1/content-types/ct-1/entries", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var response map[string]any
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response["id"]).To(Equal(entry.ID.String()))
			Expect(response["data"].(map[string]any)["title"]).To(Equal("Hello"))
		})

		It("returns 422 with the full error list", func() {
			validationErrs := domain.ValidationErrors{
				{Field: "title", Rule: domain.RuleMissingRequiredField, Message: `field "title" is required`},
				{Field: "views", Rule: domain.RuleTypeMismatch, Expected: "number", Message: `field "views" must be of kind number`},
			}
			mockService.EXPECT().
				CreateEntry(gomock.Any(), domain.ID("ct-1"), gomock.Any()).
				Return(domain.Entry{}, validationErrs)

			body := `{"views":"abc"}`
			request := httptest.NewRequest("POST", "/v1/content-types/ct-1/entries", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))

			var response struct {
				Message string           `json:"message"`
				Errors  []map[string]any `json:"errors"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Errors).To(HaveLen(2))
			Expect(response.Errors[0]["rule"]).To(Equal("missing_required_field"))
			Expect(response.Errors[1]["rule"]).To(Equal("type_mismatch"))
		})

		It("maps an unknown content type to 404", func() {
			mockService.EXPECT().
				CreateEntry(gomock.Any(), domain.ID("missing"), gomock.Any()).
				Return(domain.Entry{}, usecases.ErrContentTypeNotFound)

			body := `{"title":"Hello"}`
			request := httptest.NewRequest("POST", "/v1/content-types/missing/entries", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a malformed body with 400", func() {
			request := httptest.NewRequest("POST", "/v1/content-types/ct-1/entries", strings.NewReader("{broken"))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("listEntries", func() {
		It("returns a paginated listing", func() {
			entry := newEntry()
			expectedPagination := usecases.Pagination{Limit: 2, Offset: 2}
			mockService.EXPECT().
				ListEntries(gomock.Any(), domain.ID("ct-1"), expectedPagination).
				Return([]domain.Entry{entry}, 3, nil)

			request := httptest.NewRequest("GET", "/v1/content-types/ct-1/entries?page=2&limit=2", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			var response struct {
				Data       []map[string]any `json:"data"`
				Pagination map[string]any   `json:"pagination"`
			}
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Data).To(HaveLen(1))
			Expect(response.Pagination["total"]).To(Equal(float64(3)))
		})
	})

	Context("getEntry", func() {
		It("maps not found to 404", func() {
			mockService.EXPECT().
				GetEntry(gomock.Any(), domain.ID("ct-1"), domain.ID("missing")).
				Return(domain.Entry{}, usecases.ErrEntryNotFound)

			request := httptest.NewRequest("GET", "/v1/content-types/ct-1/entries/missing", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("updateEntry", func() {
		It("applies a partial update", func() {
			entry := newEntry()
			entry.Data["views"] = float64(11)
			mockService.EXPECT().
				UpdateEntry(gomock.Any(), domain.ID("ct-1"), entry.ID, domain.EntryData{"views": float64(11)}).
				Return(entry, nil)

			body := `{"views":11}`
			request := httptest.NewRequest("PATCH", "/v1/content-types/ct-1/entries/"+entry.ID.String(), strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("returns 422 when clearing a required field", func() {
			entry := newEntry()
			validationErrs := domain.ValidationErrors{
				{Field: "title", Rule: domain.RuleMissingRequiredField, Message: `field "title" is required`},
			}
			mockService.EXPECT().
				UpdateEntry(gomock.Any(), domain.ID("ct-1"), entry.ID, gomock.Any()).
				Return(domain.Entry{}, validationErrs)

			body := `{"title":null}`
			request := httptest.NewRequest("PATCH", "/v1/content-types/ct-1/entries/"+entry.ID.String(), strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))
		})
	})

	Context("with an editor session", func() {
		BeforeEach(func() {
			controller = httpapi.NewEntryController(mockService, sessionOnlyGuard{})
			router = http.NewServeMux()
			controller.AddRoutes(router)
		})

		It("refuses to create an entry", func() {
			body := `{"title":"Hello"}`
			request := httptest.NewRequest("POST", "/v1/content-types/ct-1/entries", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("refuses to update an entry", func() {
			body := `{"title":"Hello"}`
			request := httptest.NewRequest("PATCH", "/v1/content-types/ct-1/entries/e-1", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("refuses to delete an entry", func() {
			request := httptest.NewRequest("DELETE", "/v1/content-types/ct-1/entries/e-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})

		It("still serves reads", func() {
			entry := newEntry()
			mockService.EXPECT().
				GetEntry(gomock.Any(), domain.ID("ct-1"), entry.ID).
				Return(entry, nil)

			request := httptest.NewRequest("GET", "/v1/content-types/ct-1/entries/"+entry.ID.String(), nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})
	})

	Context("deleteEntry", func() {
		It("returns 204 on success", func() {
			mockService.EXPECT().
				DeleteEntry(gomock.Any(), domain.ID("ct-1"), domain.ID("e-1")).
				Return(nil)

			request := httptest.NewRequest("DELETE", "/v1/content-types/ct-1/entries/e-1", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
