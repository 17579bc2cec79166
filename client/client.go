// Package client é o consumidor tipado da API, substituindo as camadas de
// request duplicadas que os clientes web e mobile mantinham cada um por conta
// própria.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/limpacelular/limpa-celular/api"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken define o bearer token usado nas chamadas autenticadas. Register e
// Login já fazem isso com o token retornado.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError carrega o status HTTP e a mensagem devolvida pela API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: erro HTTP %d", e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Register(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var out api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", api.RegisterRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	var out api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", api.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var out struct {
		User api.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) CreateRequest(ctx context.Context, deviceInfo *string) (*api.Request, error) {
	var out struct {
		Request api.Request `json:"request"`
	}
	body := api.CreateRequestBody{DeviceInfo: deviceInfo}
	if err := c.do(ctx, http.MethodPost, "/requests", body, &out); err != nil {
		return nil, err
	}
	return &out.Request, nil
}

func (c *Client) ListRequests(ctx context.Context) ([]api.Request, error) {
	var out struct {
		Requests []api.Request `json:"requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/requests", nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

func (c *Client) SetRequestStatus(ctx context.Context, id, status string) (*api.Request, error) {
	var out struct {
		Request api.Request `json:"request"`
	}
	body := api.UpdateStatusBody{Status: status}
	if err := c.do(ctx, http.MethodPatch, "/requests/"+id+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out.Request, nil
}

func (c *Client) RunMockScan(ctx context.Context, id string) (*api.Request, *api.ScanResult, error) {
	var out struct {
		Request api.Request    `json:"request"`
		Scan    api.ScanResult `json:"scan"`
	}
	if err := c.do(ctx, http.MethodPost, "/requests/"+id+"/scan/mock", nil, &out); err != nil {
		return nil, nil, err
	}
	return &out.Request, &out.Scan, nil
}

// GetCloudConfig devolve nil sem erro quando nenhuma configuração existe.
func (c *Client) GetCloudConfig(ctx context.Context) (*api.CloudConfig, error) {
	var out struct {
		Config *api.CloudConfig `json:"config"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/cloud-config", nil, &out); err != nil {
		return nil, err
	}
	return out.Config, nil
}

func (c *Client) SetCloudConfig(ctx context.Context, body api.CloudConfigBody) (*api.CloudConfig, error) {
	var out struct {
		Config *api.CloudConfig `json:"config"`
	}
	if err := c.do(ctx, http.MethodPut, "/admin/cloud-config", body, &out); err != nil {
		return nil, err
	}
	return out.Config, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}
