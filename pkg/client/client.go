// Package client cliente REST tipado de la API de administración, para dashboards y herramientas.
//
// Cada método corresponde a una ruta bajo /api y devuelve los mismos DTOs que el servidor.
// Los errores HTTP se devuelven como *APIError con el cuerpo dto.ErrorResponse.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
)

const maxErrorBody = 64 * 1024

// APIError respuesta no 2xx del servidor.
type APIError struct {
	Status int
	dto.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("client: HTTP %d", e.Status)
	}
	return fmt.Sprintf("client: HTTP %d %s: %s", e.Status, e.Code, e.Message)
}

// IsStatus indica si err es un *APIError con el status dado.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client cliente de la API. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Option configura el cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (timeouts, transporte).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken fija un Bearer Token ya emitido.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New construye el cliente. baseURL sin /api, p.ej. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Token devuelve el token vigente (vacío antes de Login).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// do envía la petición y decodifica la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	resp, err := c.send(ctx, method, path, query, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decodificar %s %s: %w", method, path, err)
	}
	return nil
}

// send arma la petición y convierte los no 2xx en *APIError. El llamador cierra el Body.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, in interface{}) (*http.Response, error) {
	u := c.baseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("client: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("client: crear HTTP request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("client: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("client: llamada HTTP fallida: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if jsonErr := json.Unmarshal(raw, &apiErr.ErrorResponse); jsonErr != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return nil, apiErr
}

func pageQuery(p dto.PageRequest) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func pathID(prefix, id string, suffix ...string) string {
	p := prefix + "/" + url.PathEscape(id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

// call decodifica la respuesta en un *T; ante error devuelve nil.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, in interface{}) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, query, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// callList igual que call para respuestas que son un arreglo JSON. Nunca devuelve nil sin error.
func callList[T any](ctx context.Context, c *Client, method, path string, query url.Values, in interface{}) ([]T, error) {
	out := []T{}
	if err := c.do(ctx, method, path, query, in, &out); err != nil {
		return nil, err
	}
	return out, nil
}
