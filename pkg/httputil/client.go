package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// StatusError reports a non-2xx response from the catalog service.
// The status code is preserved so callers can classify the failure.
type StatusError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// IsNotFound reports whether err is a StatusError with status 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// Client performs GET requests against a fixed base URL and decodes JSON
// responses. It is immutable after construction and safe for concurrent use.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient creates a Client for the given base URL. If hc is nil, a
// default client with proxy settings from the environment is used.
func NewClient(baseURL string, hc *http.Client) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	if hc == nil {
		hc = NewHTTPClient(ProxyFromEnv())
	}
	return &Client{base: base, http: hc}, nil
}

// GetJSON issues a GET for the path elements joined onto the base URL and
// decodes the JSON body into v. Non-2xx responses return a *StatusError;
// connectivity and decode failures propagate unchanged.
func (c *Client) GetJSON(ctx context.Context, v any, elem ...string) error {
	u := c.base.JoinPath(elem...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, URL: u.String()}
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
