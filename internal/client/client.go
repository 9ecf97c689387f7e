// Package client is the HTTP client the assetdeck TUI uses to talk to
// assetdeckd. Server errors arrive as the uniform `{"error": ...}` envelope
// and are rehydrated into apperr values.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"assetdeck/internal/apperr"
	"assetdeck/internal/config"
	"assetdeck/internal/model"
)

const clientLabel = "client"

// Identity env vars for the TUI session.
const (
	EnvOrgID  = "ASSETDECK_ORG_ID"
	EnvUserID = "ASSETDECK_USER_ID"
)

// Client talks to one assetdeckd instance as one user.
type Client struct {
	baseURL string
	orgID   uint
	userID  uint
	http    *http.Client
}

// New creates a client from the environment: server URL, org, and user.
func New() (*Client, error) {
	base := os.Getenv(config.EnvServerURL)
	if base == "" {
		base = config.DefaultServerURL
	}
	orgID, err1 := strconv.ParseUint(os.Getenv(EnvOrgID), 10, 32)
	userID, err2 := strconv.ParseUint(os.Getenv(EnvUserID), 10, 32)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("set %s and %s to numeric ids", EnvOrgID, EnvUserID)
	}
	return NewWith(base, uint(orgID), uint(userID)), nil
}

// NewWith creates a client with explicit settings.
func NewWith(baseURL string, orgID, userID uint) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		orgID:   orgID,
		userID:  userID,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// PageResult is one page of a list response.
type PageResult[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// ListLocations fetches one page of locations.
func (c *Client) ListLocations(ctx context.Context, page, perPage int, search string) (*PageResult[model.Location], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	if search != "" {
		q.Set("search", search)
	}
	var out PageResult[model.Location]
	if err := c.get(ctx, "/api/v1/locations?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLocation fetches one location.
func (c *Client) GetLocation(ctx context.Context, id uint) (*model.Location, error) {
	var out struct {
		Location model.Location `json:"location"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/locations/%d", id), &out); err != nil {
		return nil, err
	}
	return &out.Location, nil
}

// CreateLocation creates a location.
func (c *Client) CreateLocation(ctx context.Context, name, description, address string) (*model.Location, error) {
	form := url.Values{"name": {name}}
	if description != "" {
		form.Set("description", description)
	}
	if address != "" {
		form.Set("address", address)
	}
	var out struct {
		Location model.Location `json:"location"`
	}
	if err := c.postForm(ctx, "/api/v1/locations", form, &out); err != nil {
		return nil, err
	}
	return &out.Location, nil
}

// DeleteLocation removes one location.
func (c *Client) DeleteLocation(ctx context.Context, id uint) error {
	form := url.Values{"intent": {"delete"}}
	return c.postForm(ctx, fmt.Sprintf("/api/v1/locations/%d", id), form, nil)
}

// BulkDeleteLocations removes the selection; returns rows deleted.
func (c *Client) BulkDeleteLocations(ctx context.Context, sel model.Selection) (int64, error) {
	form := selectionForm(sel)
	form.Set("intent", "bulk-delete")
	var out struct {
		Deleted int64 `json:"deleted"`
	}
	if err := c.postForm(ctx, "/api/v1/locations/bulk", form, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}

// ListAssets fetches one page of assets.
func (c *Client) ListAssets(ctx context.Context, page, perPage int, search string) (*PageResult[model.Asset], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	if search != "" {
		q.Set("search", search)
	}
	var out PageResult[model.Asset]
	if err := c.get(ctx, "/api/v1/assets?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAsset fetches the full detail aggregate for one asset.
func (c *Client) GetAsset(ctx context.Context, id uint) (*model.Asset, error) {
	var out struct {
		Asset model.Asset `json:"asset"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/assets/%d", id), &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// CreateNote attaches a note to an asset.
func (c *Client) CreateNote(ctx context.Context, assetID uint, body string) (*model.Note, error) {
	form := url.Values{"intent": {"add-note"}, "body": {body}}
	var out struct {
		Note model.Note `json:"note"`
	}
	if err := c.postForm(ctx, fmt.Sprintf("/api/v1/assets/%d", assetID), form, &out); err != nil {
		return nil, err
	}
	return &out.Note, nil
}

// ToggleAsset flips an asset between available and archived.
func (c *Client) ToggleAsset(ctx context.Context, id uint) (*model.Asset, error) {
	form := url.Values{"intent": {"toggle"}}
	var out struct {
		Asset model.Asset `json:"asset"`
	}
	if err := c.postForm(ctx, fmt.Sprintf("/api/v1/assets/%d", id), form, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// AssignCustody checks an asset out to a user.
func (c *Client) AssignCustody(ctx context.Context, assetID, userID uint) (*model.Asset, error) {
	form := url.Values{"intent": {"assign-custody"}, "user_id": {strconv.Itoa(int(userID))}}
	var out struct {
		Asset model.Asset `json:"asset"`
	}
	if err := c.postForm(ctx, fmt.Sprintf("/api/v1/assets/%d", assetID), form, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// ReleaseCustody returns an asset to the available pool.
func (c *Client) ReleaseCustody(ctx context.Context, assetID uint) (*model.Asset, error) {
	form := url.Values{"intent": {"release-custody"}}
	var out struct {
		Asset model.Asset `json:"asset"`
	}
	if err := c.postForm(ctx, fmt.Sprintf("/api/v1/assets/%d", assetID), form, &out); err != nil {
		return nil, err
	}
	return &out.Asset, nil
}

// BulkUpdateLocation moves the selected assets to a location; returns rows
// updated.
func (c *Client) BulkUpdateLocation(ctx context.Context, sel model.Selection, locationID uint) (int64, error) {
	form := selectionForm(sel)
	form.Set("intent", "bulk-update-location")
	form.Set("location_id", strconv.Itoa(int(locationID)))
	var out struct {
		Updated int64 `json:"updated"`
	}
	if err := c.postForm(ctx, "/api/v1/assets/bulk", form, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

func selectionForm(sel model.Selection) url.Values {
	form := url.Values{}
	if sel.All {
		form.Set("all", model.SentinelAll)
	}
	for _, id := range sel.IDs {
		form.Add("ids", strconv.Itoa(int(id)))
	}
	return form
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperr.Internal(clientLabel, err)
	}
	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return apperr.Internal(clientLabel, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("X-Org-ID", strconv.Itoa(int(c.orgID)))
	req.Header.Set("X-User-ID", strconv.Itoa(int(c.userID)))

	resp, err := c.http.Do(req)
	if err != nil {
		return &apperr.Error{
			Cause:   err,
			Message: "server unreachable",
			Label:   clientLabel,
			Status:  http.StatusServiceUnavailable,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return apperr.Internal(clientLabel, err)
	}
	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		message := "request failed"
		if json.Unmarshal(body, &envelope) == nil && envelope.Error != "" {
			message = envelope.Error
		}
		return &apperr.Error{
			Message: message,
			Label:   clientLabel,
			Status:  resp.StatusCode,
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperr.Internal(clientLabel, err)
	}
	return nil
}
