package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"atlas-cms/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

// PaginatedResponse mirrors the list envelope every collection endpoint renders.
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Pagination struct {
		Total int `json:"total"`
		Limit int `json:"limit"`
		Page  int `json:"page"`
	} `json:"pagination"`
}

type FeatureContext struct {
	apiDriver        *driver.APIDriver
	response         *http.Response
	responseData     map[string]any
	responseListData []map[string]any
	contentTypeID    string
	apiIdentifier    string
	entryID          string
	require          *require.Assertions
	t                godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Auth steps
	ctx.Given(`^an authenticated admin session$`, fc.anAuthenticatedAdminSession)
	ctx.When(`^I log in with email "([^"]*)" and password "([^"]*)"$`, fc.iLogInWithEmailAndPassword)
	ctx.When(`^I request my own profile$`, fc.iRequestMyOwnProfile)
	ctx.Then(`^the response should contain the user with email "([^"]*)"$`, fc.theResponseShouldContainTheUserWithEmail)
	ctx.When(`^I log out$`, fc.iLogOut)

	// Content type steps
	ctx.Given(`^a content type "([^"]*)" with a required text field "([^"]*)"$`, fc.aContentTypeWithARequiredTextField)
	ctx.When(`^I create a content type "([^"]*)" with a required text field "([^"]*)"$`, fc.iCreateAContentTypeWithARequiredTextField)
	ctx.When(`^I add a number field "([^"]*)" to the content type$`, fc.iAddANumberFieldToTheContentType)
	ctx.When(`^I remove the field "([^"]*)" from the content type$`, fc.iRemoveTheFieldFromTheContentType)
	ctx.When(`^I get the content type by its ID$`, fc.iGetTheContentTypeByItsID)
	ctx.When(`^I rename the content type to "([^"]*)"$`, fc.iRenameTheContentTypeTo)
	ctx.When(`^I list all content types$`, fc.iListAllContentTypes)
	ctx.When(`^I delete the content type$`, fc.iDeleteTheContentType)
	ctx.Then(`^the response should contain the content type details$`, fc.theResponseShouldContainTheContentTypeDetails)
	ctx.Then(`^the response should contain the content type with name "([^"]*)"$`, fc.theResponseShouldContainTheContentTypeWithName)
	ctx.Then(`^the list should contain our content type$`, fc.theListShouldContainOurContentType)
	ctx.Then(`^the content type should have a field "([^"]*)"$`, fc.theContentTypeShouldHaveAField)
	ctx.Then(`^the content type should not have a field "([^"]*)"$`, fc.theContentTypeShouldNotHaveAField)

	// Entry steps
	ctx.Given(`^an entry exists with "([^"]*)" set to "([^"]*)"$`, fc.anEntryExistsWithSetTo)
	ctx.When(`^I create an entry with "([^"]*)" set to "([^"]*)"$`, fc.iCreateAnEntryWithSetTo)
	ctx.When(`^I create an entry without any data$`, fc.iCreateAnEntryWithoutAnyData)
	ctx.When(`^I get the entry by its ID$`, fc.iGetTheEntryByItsID)
	ctx.When(`^I update the entry with "([^"]*)" set to "([^"]*)"$`, fc.iUpdateTheEntryWithSetTo)
	ctx.When(`^I list all entries of the content type$`, fc.iListAllEntriesOfTheContentType)
	ctx.When(`^I delete the entry$`, fc.iDeleteTheEntry)
	ctx.Then(`^the response should contain the entry details$`, fc.theResponseShouldContainTheEntryDetails)
	ctx.Then(`^the response should contain the entry with "([^"]*)" set to "([^"]*)"$`, fc.theResponseShouldContainTheEntryWithSetTo)
	ctx.Then(`^the list should contain our entry$`, fc.theListShouldContainOurEntry)
	ctx.Then(`^the response should list the validation problems$`, fc.theResponseShouldListTheValidationProblems)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.responseData = nil
	fc.responseListData = nil
	fc.contentTypeID = ""
	fc.apiIdentifier = ""
	fc.entryID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) decodePaginatedResponse(response *http.Response) ([]map[string]any, error) {
	var paginatedResp PaginatedResponse[map[string]any]
	if err := fc.decodeBody(response.Body, &paginatedResp); err != nil {
		return nil, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	return paginatedResp.Data, nil
}
