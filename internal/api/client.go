// Package api implements the HTTP client every back-office service goes
// through. It composes URLs against a configured base, injects the bearer
// token and tenant-scope headers, normalizes success bodies into the
// Response envelope and all failures into the structured Error type.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const (
	// HeaderTenant carries the identifier of the tenant a request is
	// scoped to.
	HeaderTenant = "X-Tenant-ID"

	// TenantListPath is the bootstrap endpoint that lists the tenants the
	// authenticated user belongs to. It always carries the tenant header,
	// empty if no tenant has been selected yet.
	TenantListPath = "/v0/tenant/list"
)

// tenantExemptPaths must never carry tenant scoping. Matched as substrings
// of the request path.
var tenantExemptPaths = []string{"/auth/", "/health"}

// TokenSource yields the current access token, if any. Implemented by the
// auth token provider.
type TokenSource interface {
	AccessToken() (string, bool)
}

// TenantSource yields the currently selected tenant, if any. Implemented by
// the session tenant store.
type TenantSource interface {
	TenantID() (string, bool)
}

// Query holds query parameters for GET requests. Nil values are omitted from
// the query string entirely; empty strings are sent as-is.
type Query map[string]any

// Client issues requests against a single base URL. It holds no per-request
// state, so one instance is safe for concurrent use by every service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	tenants    TenantSource
	logger     *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, tenants TenantSource, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		tenants:    tenants,
		logger:     logger,
	}
}

// Get issues a GET request and normalizes the response.
func Get[T any](ctx context.Context, c *Client, path string, query Query) (*Response[T], error) {
	body, err := c.do(ctx, http.MethodGet, path, query, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](path, body)
}

// Post issues a POST request with an optional JSON body and extra headers
// merged over the defaults.
func Post[T any](ctx context.Context, c *Client, path string, reqBody any, headers map[string]string) (*Response[T], error) {
	body, err := c.do(ctx, http.MethodPost, path, nil, reqBody, headers)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](path, body)
}

// Put issues a PUT request with an optional JSON body and extra headers.
func Put[T any](ctx context.Context, c *Client, path string, reqBody any, headers map[string]string) (*Response[T], error) {
	body, err := c.do(ctx, http.MethodPut, path, nil, reqBody, headers)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](path, body)
}

// Patch issues a PATCH request with an optional JSON body and extra headers.
func Patch[T any](ctx context.Context, c *Client, path string, reqBody any, headers map[string]string) (*Response[T], error) {
	body, err := c.do(ctx, http.MethodPatch, path, nil, reqBody, headers)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](path, body)
}

// Delete issues a DELETE request.
func Delete[T any](ctx context.Context, c *Client, path string) (*Response[T], error) {
	body, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeResponse[T](path, body)
}

// do performs a single round trip and returns the raw response body. Non-2xx
// statuses come back as *Error; every other failure (URL building, body
// marshaling, transport, body read) is wrapped as a network Error so callers
// see exactly one error shape.
func (c *Client) do(ctx context.Context, method, path string, query Query, reqBody any, headers map[string]string) ([]byte, error) {
	fullURL := c.baseURL + path
	if qs := encodeQuery(query); qs != "" {
		fullURL += "?" + qs
	}

	var bodyReader io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return nil, networkError(path, fmt.Errorf("encoding request body: %w", err))
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, networkError(path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.setAuthHeader(req)
	c.setTenantHeader(req, path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, networkError(path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := errorFromResponse(resp.StatusCode, respBody)
		c.logger.Debug("api request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"slug", apiErr.Slug,
		)
		return nil, apiErr
	}

	return respBody, nil
}

func (c *Client) setAuthHeader(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token, ok := c.tokens.AccessToken(); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// setTenantHeader applies the tenant-scoping rules: the tenant-list bootstrap
// endpoint always gets the header (empty when nothing is selected), exempt
// paths never do, and everything else gets it when a tenant is selected.
func (c *Client) setTenantHeader(req *http.Request, path string) {
	if path == TenantListPath {
		tenant := ""
		if c.tenants != nil {
			if id, ok := c.tenants.TenantID(); ok {
				tenant = id
			}
		}
		req.Header.Set(HeaderTenant, tenant)
		return
	}

	for _, exempt := range tenantExemptPaths {
		if strings.Contains(path, exempt) {
			return
		}
	}

	if c.tenants == nil {
		return
	}
	if id, ok := c.tenants.TenantID(); ok {
		req.Header.Set(HeaderTenant, id)
	}
}

func encodeQuery(query Query) string {
	if len(query) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range query {
		if value == nil {
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	return values.Encode()
}
