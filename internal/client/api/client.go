package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"chemexplorer/internal/models"
	pkgapi "chemexplorer/pkg/api"
)

// Client is the HTTP client for the compound catalog server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Login authenticates the user and returns the bearer token.
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", req, &resp); err != nil {
		return nil, asAuthError(err)
	}
	return &resp, nil
}

// Register creates a new account and returns the bearer token, logging the
// user in implicitly.
func (c *Client) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/register", "", req, &resp); err != nil {
		return nil, asAuthError(err)
	}
	return &resp, nil
}

// SearchCompounds queries the catalog with the given filter parameters.
// Only non-empty criteria should be present in params.
func (c *Client) SearchCompounds(ctx context.Context, token string, params url.Values) ([]models.Compound, error) {
	path := "/compounds"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var compounds []models.Compound
	if err := c.do(ctx, http.MethodGet, path, token, nil, &compounds); err != nil {
		return nil, asFetchError(err)
	}
	return compounds, nil
}

// GetFavorites fetches the complete favorites list of the authenticated user.
func (c *Client) GetFavorites(ctx context.Context, token string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites", token, nil, &favorites); err != nil {
		return nil, asFetchError(err)
	}
	return favorites, nil
}

// AddFavorite requests creation of a favorite for the given compound.
// The caller is expected to refetch the favorites list afterwards; the
// server-assigned favorite id is not taken from this response.
func (c *Client) AddFavorite(ctx context.Context, token, compoundID string) error {
	req := pkgapi.AddFavoriteRequest{CompoundID: compoundID}
	if err := c.do(ctx, http.MethodPost, "/favorites", token, req, nil); err != nil {
		return asFetchError(err)
	}
	return nil
}

// DeleteFavorite requests deletion of the favorite with the given id.
func (c *Client) DeleteFavorite(ctx context.Context, token, favoriteID string) error {
	path := "/favorites/" + url.PathEscape(favoriteID)
	if err := c.do(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return asFetchError(err)
	}
	return nil
}

// statusError is the internal representation of a non-2xx response before it
// is mapped to AuthError or FetchError.
type statusError struct {
	detail string
	raw    string
	code   int
}

func (e *statusError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.code, e.detail)
	}
	return fmt.Sprintf("server error (%d): %s", e.code, e.raw)
}

func asAuthError(err error) *AuthError {
	var se *statusError
	if errors.As(err, &se) {
		return &AuthError{Err: err, Detail: se.detail, StatusCode: se.code}
	}
	return &AuthError{Err: err}
}

func asFetchError(err error) *FetchError {
	var se *statusError
	if errors.As(err, &se) {
		return &FetchError{Err: err, StatusCode: se.code}
	}
	return &FetchError{Err: err}
}

// do executes an HTTP request against the server. The bearer header is set
// only when token is non-empty. A non-2xx response is returned as statusError
// with the server-provided detail when the body parses as ErrorResponse.
func (c *Client) do(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		se := &statusError{code: resp.StatusCode, raw: string(respBody)}
		var errResp pkgapi.ErrorResponse
		if jsonErr := json.Unmarshal(respBody, &errResp); jsonErr == nil {
			se.detail = errResp.Detail
		}
		return se
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
