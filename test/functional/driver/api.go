package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
	token   string
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// SetToken makes every subsequent request carry the given bearer token.
func (d *APIDriver) SetToken(token string) {
	d.token = token
}

func (d *APIDriver) do(method, path string, body any) (*http.Response, error) {
	var reader *bytes.Buffer
	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(reqBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", d.baseURL, path), reader)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}
	return d.client.Do(req)
}

func (d *APIDriver) Register(email, name, password string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/auth/register", map[string]any{
		"email":    email,
		"name":     name,
		"password": password,
	})
}

func (d *APIDriver) Login(email, password string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
}

func (d *APIDriver) Logout() (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/auth/logout", nil)
}

func (d *APIDriver) Me() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/auth/me", nil)
}

func (d *APIDriver) CreateUser(email, name, password, role string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/users", map[string]any{
		"email":    email,
		"name":     name,
		"password": password,
		"role":     role,
	})
}

func (d *APIDriver) ListUsers() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/users", nil)
}

func (d *APIDriver) CreateContentType(apiIdentifier, name string, fields []map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/content-types", map[string]any{
		"api_identifier": apiIdentifier,
		"name":           name,
		"fields":         fields,
	})
}

func (d *APIDriver) ListContentTypes() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/content-types", nil)
}

func (d *APIDriver) GetContentType(id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/content-types/%s", id), nil)
}

func (d *APIDriver) UpdateContentType(id, newName string) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/content-types/%s", id), map[string]any{
		"name": newName,
	})
}

func (d *APIDriver) DeleteContentType(id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/content-types/%s", id), nil)
}

func (d *APIDriver) AddField(contentTypeID string, field map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/content-types/%s/fields", contentTypeID), field)
}

func (d *APIDriver) RemoveField(contentTypeID, identifier string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/content-types/%s/fields/%s", contentTypeID, identifier), nil)
}

func (d *APIDriver) CreateEntry(contentTypeID string, data map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, fmt.Sprintf("/v1/content-types/%s/entries", contentTypeID), data)
}

func (d *APIDriver) ListEntries(contentTypeID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/content-types/%s/entries", contentTypeID), nil)
}

func (d *APIDriver) GetEntry(contentTypeID, entryID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/content-types/%s/entries/%s", contentTypeID, entryID), nil)
}

func (d *APIDriver) UpdateEntry(contentTypeID, entryID string, partial map[string]any) (*http.Response, error) {
	return d.do(http.MethodPatch, fmt.Sprintf("/v1/content-types/%s/entries/%s", contentTypeID, entryID), partial)
}

func (d *APIDriver) DeleteEntry(contentTypeID, entryID string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/content-types/%s/entries/%s", contentTypeID, entryID), nil)
}

func (d *APIDriver) GetDashboardStats() (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/dashboard/stats", nil)
}
