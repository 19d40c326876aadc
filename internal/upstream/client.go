// Package upstream is the HTTP client for the municipal REST API the
// dashboard administrates. The API is opaque: this client only shuttles
// JSON and maps failures onto the shared error taxonomy.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/config"
	"github.com/spec-kit/office-admin-service/internal/domain"
	apperrors "github.com/spec-kit/office-admin-service/pkg/util/errorutil"
)

const sessionTokenHeader = "X-Session-Token"

// Client talks to the upstream municipal API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// New builds a client from configuration.
func New(cfg config.UpstreamConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger.With(zap.String("component", "upstream_client")),
	}
}

type loginResponse struct {
	Token     string `json:"token"`
	Access    string `json:"access"`
	AuthToken string `json:"auth_token"`
}

// Login authenticates against POST /users/login/ and returns whichever
// session token field the server chose to populate. An empty token with a
// 2xx response is tolerated; subsequent requests then go out unauthenticated.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/users/login/", "", body, &resp); err != nil {
		return "", err
	}
	switch {
	case resp.Token != "":
		return resp.Token, nil
	case resp.Access != "":
		return resp.Access, nil
	default:
		return resp.AuthToken, nil
	}
}

// Ping probes the upstream base URL for reachability. Any HTTP response
// counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/departments", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// ListDepartments fetches the department collection.
func (c *Client) ListDepartments(ctx context.Context, token string) ([]domain.Department, error) {
	var out []domain.Department
	if err := c.do(ctx, http.MethodGet, "/departments", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEmployees fetches the staff collection.
func (c *Client) ListEmployees(ctx context.Context, token string) ([]domain.Employee, error) {
	var out []domain.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListServices fetches the service collection.
func (c *Client) ListServices(ctx context.Context, token string) ([]domain.Service, error) {
	var out []domain.Service
	if err := c.do(ctx, http.MethodGet, "/services", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDepartment creates a department; a nil result means the server
// confirmed with an empty body.
func (c *Client) CreateDepartment(ctx context.Context, token string, dept domain.Department) (*domain.Department, error) {
	var out *domain.Department
	if err := c.do(ctx, http.MethodPost, "/departments/create", token, dept, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDepartment updates a department by server id.
func (c *Client) UpdateDepartment(ctx context.Context, token string, id int64, dept domain.Department) (*domain.Department, error) {
	var out *domain.Department
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/departments/%d/", id), token, dept, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteDepartment deletes a department by server id.
func (c *Client) DeleteDepartment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/departments/%d/", id), token, nil, nil)
}

// CreateService creates a service.
func (c *Client) CreateService(ctx context.Context, token string, svc domain.Service) (*domain.Service, error) {
	var out *domain.Service
	if err := c.do(ctx, http.MethodPost, "/services/create", token, svc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateService updates a service by server id.
func (c *Client) UpdateService(ctx context.Context, token string, id int64, svc domain.Service) (*domain.Service, error) {
	var out *domain.Service
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/services/%d/", id), token, svc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteService deletes a service by server id.
func (c *Client) DeleteService(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/services/%d/", id), token, nil, nil)
}

// CreateEmployee creates a staff member.
func (c *Client) CreateEmployee(ctx context.Context, token string, emp domain.Employee) (*domain.Employee, error) {
	var out *domain.Employee
	if err := c.do(ctx, http.MethodPost, "/employees/create", token, emp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateEmployee updates a staff member by server id.
func (c *Client) UpdateEmployee(ctx context.Context, token string, id int64, emp domain.Employee) (*domain.Employee, error) {
	var out *domain.Employee
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d/", id), token, emp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEmployee deletes a staff member by server id.
func (c *Client) DeleteEmployee(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d/", id), token, nil, nil)
}

// do performs one JSON round trip. The session token is attached on every
// call except login. On success an empty or non-JSON body is treated as no
// data, not as an error; non-2xx responses surface the server's message
// field when present.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" && !strings.Contains(path, "/users/login") {
		req.Header.Set(sessionTokenHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		var failure struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &failure) == nil {
			message = failure.Message
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return apperrors.NewUpstreamError(resp.StatusCode, message)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// tolerated: a non-JSON success body counts as no data
		c.logger.Debug("ignoring non-JSON upstream body", zap.String("path", path))
	}
	return nil
}
