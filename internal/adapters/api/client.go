// Package api is the HTTP adapter to the backing restaurant REST API. It
// implements the menu, order and sales ports over plain JSON endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"turkeypos/internal/pos/ports"
)

// Credentials carries the bearer token for authenticated endpoints. It is
// injected explicitly at construction instead of being read from ambient
// storage.
type Credentials struct {
	Token string
}

// Client talks to the restaurant API. Timeouts are delegated to the
// underlying http.Client; an expired deadline surfaces as a generic upstream
// failure like any other transport error.
type Client struct {
	baseURL string
	http    *http.Client
	creds   Credentials
}

// Compile-time checks that the client satisfies every port it claims.
var (
	_ ports.MenuService  = (*Client)(nil)
	_ ports.OrderService = (*Client)(nil)
	_ ports.SalesService = (*Client)(nil)
)

func NewClient(baseURL string, creds Credentials) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// UpstreamError is a non-2xx reply from the restaurant API.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("restaurant api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("restaurant api: status %d: %s", e.StatusCode, e.Detail)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.Token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &UpstreamError{StatusCode: res.StatusCode, Detail: readDetail(res.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// readDetail extracts the {"detail": "..."} message FastAPI-style backends
// put in error bodies. Anything unparseable is dropped.
func readDetail(r io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
