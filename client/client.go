// Package client is a Go client for the kisan record API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kisan/responses"

	"github.com/go-resty/resty/v2"
)

// APIError is returned for every non-2xx response. Message is set for
// envelope errors such as not found; Fields holds per-field validation errors.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for field, msgs := range e.Fields {
			parts = append(parts, field+": "+strings.Join(msgs, " "))
		}
		return fmt.Sprintf("kisan api: %d: %s", e.Status, strings.Join(parts, "; "))
	}
	return fmt.Sprintf("kisan api: %d: %s", e.Status, e.Message)
}

type FarmerInput struct {
	Name     string `json:"name"`
	Village  string `json:"village"`
	Phone    string `json:"phone"`
	LandArea string `json:"land_area"`
}

type LandInput struct {
	Farmer   uint   `json:"farmer"`
	Location string `json:"location"`
	Area     string `json:"area"`
	SoilType string `json:"soil_type"`
}

type SchemeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type ApplicationInput struct {
	Farmer uint   `json:"farmer"`
	Scheme uint   `json:"scheme"`
	Status string `json:"status,omitempty"`
}

type FeatureInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
	IconColor   string `json:"icon_color"`
}

type Client struct {
	http *resty.Client
}

// New returns a client for the API rooted at baseURL, e.g. http://localhost:8000/api.
func New(baseURL string) *Client {
	r := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)
	return &Client{http: r}
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return out, parseError(resp)
	}
	if resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return out, nil
}

func parseError(resp *resty.Response) error {
	apiErr := &APIError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}

	var envelope struct {
		Status  *bool  `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Status != nil {
		apiErr.Message = envelope.Message
		return apiErr
	}

	var fields map[string][]string
	if err := json.Unmarshal(resp.Body(), &fields); err == nil && len(fields) > 0 {
		apiErr.Fields = fields
	}
	return apiErr
}

func itemPath(collection string, id uint) string {
	return fmt.Sprintf("/%s/%d/", collection, id)
}

func (c *Client) ListFarmers(ctx context.Context) ([]responses.FarmerResponse, error) {
	return do[[]responses.FarmerResponse](ctx, c, http.MethodGet, "/farmers/", nil)
}

func (c *Client) GetFarmer(ctx context.Context, id uint) (responses.FarmerResponse, error) {
	return do[responses.FarmerResponse](ctx, c, http.MethodGet, itemPath("farmers", id), nil)
}

func (c *Client) CreateFarmer(ctx context.Context, in FarmerInput) (responses.FarmerResponse, error) {
	return do[responses.FarmerResponse](ctx, c, http.MethodPost, "/farmers/", in)
}

func (c *Client) UpdateFarmer(ctx context.Context, id uint, in FarmerInput) (responses.FarmerResponse, error) {
	return do[responses.FarmerResponse](ctx, c, http.MethodPut, itemPath("farmers", id), in)
}

// PatchFarmer sends only the given fields.
func (c *Client) PatchFarmer(ctx context.Context, id uint, fields map[string]any) (responses.FarmerResponse, error) {
	return do[responses.FarmerResponse](ctx, c, http.MethodPatch, itemPath("farmers", id), fields)
}

// DeleteFarmer also removes the farmer's lands and applications.
func (c *Client) DeleteFarmer(ctx context.Context, id uint) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, itemPath("farmers", id), nil)
	return err
}

func (c *Client) ListLands(ctx context.Context) ([]responses.LandResponse, error) {
	return do[[]responses.LandResponse](ctx, c, http.MethodGet, "/lands/", nil)
}

func (c *Client) GetLand(ctx context.Context, id uint) (responses.LandResponse, error) {
	return do[responses.LandResponse](ctx, c, http.MethodGet, itemPath("lands", id), nil)
}

func (c *Client) CreateLand(ctx context.Context, in LandInput) (responses.LandResponse, error) {
	return do[responses.LandResponse](ctx, c, http.MethodPost, "/lands/", in)
}

func (c *Client) UpdateLand(ctx context.Context, id uint, in LandInput) (responses.LandResponse, error) {
	return do[responses.LandResponse](ctx, c, http.MethodPut, itemPath("lands", id), in)
}

func (c *Client) PatchLand(ctx context.Context, id uint, fields map[string]any) (responses.LandResponse, error) {
	return do[responses.LandResponse](ctx, c, http.MethodPatch, itemPath("lands", id), fields)
}

func (c *Client) DeleteLand(ctx context.Context, id uint) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, itemPath("lands", id), nil)
	return err
}

func (c *Client) ListSchemes(ctx context.Context) ([]responses.SchemeResponse, error) {
	return do[[]responses.SchemeResponse](ctx, c, http.MethodGet, "/schemes/", nil)
}

func (c *Client) GetScheme(ctx context.Context, id uint) (responses.SchemeResponse, error) {
	return do[responses.SchemeResponse](ctx, c, http.MethodGet, itemPath("schemes", id), nil)
}

func (c *Client) CreateScheme(ctx context.Context, in SchemeInput) (responses.SchemeResponse, error) {
	return do[responses.SchemeResponse](ctx, c, http.MethodPost, "/schemes/", in)
}

func (c *Client) UpdateScheme(ctx context.Context, id uint, in SchemeInput) (responses.SchemeResponse, error) {
	return do[responses.SchemeResponse](ctx, c, http.MethodPut, itemPath("schemes", id), in)
}

func (c *Client) PatchScheme(ctx context.Context, id uint, fields map[string]any) (responses.SchemeResponse, error) {
	return do[responses.SchemeResponse](ctx, c, http.MethodPatch, itemPath("schemes", id), fields)
}

// DeleteScheme also removes every application made to the scheme.
func (c *Client) DeleteScheme(ctx context.Context, id uint) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, itemPath("schemes", id), nil)
	return err
}

func (c *Client) ListApplications(ctx context.Context) ([]responses.ApplicationResponse, error) {
	return do[[]responses.ApplicationResponse](ctx, c, http.MethodGet, "/applications/", nil)
}

func (c *Client) GetApplication(ctx context.Context, id uint) (responses.ApplicationResponse, error) {
	return do[responses.ApplicationResponse](ctx, c, http.MethodGet, itemPath("applications", id), nil)
}

func (c *Client) CreateApplication(ctx context.Context, in ApplicationInput) (responses.ApplicationResponse, error) {
	return do[responses.ApplicationResponse](ctx, c, http.MethodPost, "/applications/", in)
}

func (c *Client) UpdateApplication(ctx context.Context, id uint, in ApplicationInput) (responses.ApplicationResponse, error) {
	return do[responses.ApplicationResponse](ctx, c, http.MethodPut, itemPath("applications", id), in)
}

func (c *Client) PatchApplication(ctx context.Context, id uint, fields map[string]any) (responses.ApplicationResponse, error) {
	return do[responses.ApplicationResponse](ctx, c, http.MethodPatch, itemPath("applications", id), fields)
}

func (c *Client) DeleteApplication(ctx context.Context, id uint) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, itemPath("applications", id), nil)
	return err
}

func (c *Client) ListFeatures(ctx context.Context) ([]responses.FeatureResponse, error) {
	return do[[]responses.FeatureResponse](ctx, c, http.MethodGet, "/features/", nil)
}

func (c *Client) GetFeature(ctx context.Context, id uint) (responses.FeatureResponse, error) {
	return do[responses.FeatureResponse](ctx, c, http.MethodGet, itemPath("features", id), nil)
}

func (c *Client) CreateFeature(ctx context.Context, in FeatureInput) (responses.FeatureResponse, error) {
	return do[responses.FeatureResponse](ctx, c, http.MethodPost, "/features/", in)
}

func (c *Client) UpdateFeature(ctx context.Context, id uint, in FeatureInput) (responses.FeatureResponse, error) {
	return do[responses.FeatureResponse](ctx, c, http.MethodPut, itemPath("features", id), in)
}

func (c *Client) PatchFeature(ctx context.Context, id uint, fields map[string]any) (responses.FeatureResponse, error) {
	return do[responses.FeatureResponse](ctx, c, http.MethodPatch, itemPath("features", id), fields)
}

func (c *Client) DeleteFeature(ctx context.Context, id uint) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, itemPath("features", id), nil)
	return err
}

func (c *Client) DashboardStats(ctx context.Context) (responses.DashboardStats, error) {
	return do[responses.DashboardStats](ctx, c, http.MethodGet, "/dashboard-stats/", nil)
}

// HomepageFeatures calls /get-features/.
func (c *Client) HomepageFeatures(ctx context.Context) ([]responses.FeatureResponse, error) {
	return do[[]responses.FeatureResponse](ctx, c, http.MethodGet, "/get-features/", nil)
}
