package supabase

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

	apperrors "postl-admin-backend/internal/errors"
	"postl-admin-backend/internal/logger"
)

// Client performs authenticated JSON calls against the hosted backend.
// One Client is bound to one key: the public key for tenant reads and writes,
// the service key for identity administration and profile updates.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
}

// Request describes a single backend call
type Request struct {
	Operation string
	Method    string
	Path      string
	Query     url.Values
	Body      interface{}
	Headers   map[string]string
}

// NewClient creates a backend client for baseURL authenticated with apiKey
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("backend URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("backend API key is required")
	}

	base := baseURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	parsed, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL '%s': %w", baseURL, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend URL '%s': missing host", baseURL)
	}

	return &Client{
		baseURL:    parsed,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// WithHTTPClient replaces the underlying http.Client
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the normalized backend URL
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Do executes req and decodes a JSON response body into out when out is non-nil.
// Non-2xx answers become *errors.BackendError carrying the backend's own message.
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	fullURL := c.baseURL.String() + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	logger.WithContext(ctx).Debugf("Invoking backend %s %s", req.Method, req.Path)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &apperrors.BackendError{Operation: req.Operation, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apperrors.BackendError{
			Operation: req.Operation,
			Status:    resp.StatusCode,
			Message:   errorMessage(resp.StatusCode, raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

// errorBody covers the error shapes of the table API and the identity API
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Hint             string `json:"hint"`
}

func errorMessage(status int, raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		for _, m := range []string{eb.Message, eb.Msg, eb.ErrorDescription, eb.Error} {
			if m != "" {
				return m
			}
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return fmt.Sprintf("backend request failed with status %d", status)
}
