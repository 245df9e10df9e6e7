package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dpetrovs/useradm/internal/client/models"
	"github.com/dpetrovs/useradm/internal/logging"
)

const (
	loginPath = "/api/v1/auth/login"
	usersPath = "/api/v1/user"

	defaultRequestTimeout = 10 * time.Second
)

// HTTPClient is the concrete Client speaking JSON over HTTP to the backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithHTTPClient replaces the underlying transport entirely.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type usersResponse struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

type userResponse struct {
	User models.User `json:"user"`
}

// Login exchanges credentials for an access token. A 2xx response without
// a token is an error: callers must never treat it as a session.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, loginPath, "", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", ErrMissingAccessToken
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, usersPath, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, token string, fields models.UserFields) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPost, usersPath, token, fields, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token string, id string, fields models.UserFields) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPut, usersPath+"/"+id, token, fields, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, token string, id string) error {
	return c.do(ctx, http.MethodDelete, usersPath+"/"+id, token, nil, nil)
}

// Close releases idle connections held by the transport.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do performs a single JSON request/response cycle. An empty token leaves
// the Authorization header unset. Transport failures wrap ErrUnavailable;
// non-2xx statuses become *RequestError.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reqErr := &RequestError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
		c.log.Error(ctx, "request rejected", "method", method, "path", path, "status", resp.StatusCode)
		return reqErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// errorMessage extracts a server-provided message from an error body,
// falling back to the standard status text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return http.StatusText(status)
}
