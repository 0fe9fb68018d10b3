package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
)

// ── Auth ─────────────────────────────────────────────────────────────────────

// Login autentica y guarda el token para las llamadas siguientes.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.setToken(out.Token)
	return &out, nil
}

// Me sesión del token actual.
func (c *Client) Me(ctx context.Context) (*dto.SessionResponse, error) {
	return call[dto.SessionResponse](ctx, c, http.MethodGet, "/auth/me", nil, nil)
}

// Navigation menú visible para la sesión.
func (c *Client) Navigation(ctx context.Context) ([]dto.NavAction, error) {
	return callList[dto.NavAction](ctx, c, http.MethodGet, "/auth/navigation", nil, nil)
}

// ── Accounts ─────────────────────────────────────────────────────────────────

func (c *Client) CreateAccount(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	return call[dto.AccountResponse](ctx, c, http.MethodPost, "/accounts", nil, in)
}

func (c *Client) ListAccounts(ctx context.Context, f dto.AccountQuery) ([]dto.AccountResponse, error) {
	q := url.Values{}
	setIf(q, "status", f.Status)
	setIf(q, "marketplace", f.Marketplace)
	return callList[dto.AccountResponse](ctx, c, http.MethodGet, "/accounts", q, nil)
}

func (c *Client) GetAccount(ctx context.Context, id string) (*dto.AccountResponse, error) {
	return call[dto.AccountResponse](ctx, c, http.MethodGet, pathID("/accounts", id), nil, nil)
}

func (c *Client) UpdateAccount(ctx context.Context, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	return call[dto.AccountResponse](ctx, c, http.MethodPatch, pathID("/accounts", id), nil, in)
}

// SyncAccount marca la cuenta como sincronizada (lastSync = ahora).
func (c *Client) SyncAccount(ctx context.Context, id string) (*dto.AccountResponse, error) {
	return call[dto.AccountResponse](ctx, c, http.MethodPatch, pathID("/accounts", id, "sync"), nil, nil)
}

func (c *Client) DeleteAccount(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathID("/accounts", id), nil, nil, nil)
}

// ── Products ─────────────────────────────────────────────────────────────────

func (c *Client) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	return call[dto.ProductResponse](ctx, c, http.MethodPost, "/products", nil, in)
}

func (c *Client) ListProducts(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	q := url.Values{}
	setIf(q, "search", search)
	return callList[dto.ProductResponse](ctx, c, http.MethodGet, "/products", q, nil)
}

func (c *Client) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	return call[dto.ProductResponse](ctx, c, http.MethodGet, pathID("/products", id), nil, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return call[dto.ProductResponse](ctx, c, http.MethodPatch, pathID("/products", id), nil, in)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathID("/products", id), nil, nil, nil)
}

// ── Orders ───────────────────────────────────────────────────────────────────

// OrderFilter filtros de listado y export. Fechas vacías se omiten.
type OrderFilter struct {
	Search         string
	Account        string
	TrackingStatus string
	SKU            string
	StartDate      time.Time
	EndDate        time.Time
}

func (f OrderFilter) values() url.Values {
	q := url.Values{}
	setIf(q, "search", f.Search)
	setIf(q, "account", f.Account)
	setIf(q, "trackingStatus", f.TrackingStatus)
	setIf(q, "sku", f.SKU)
	if !f.StartDate.IsZero() {
		q.Set("startDate", f.StartDate.UTC().Format(time.RFC3339))
	}
	if !f.EndDate.IsZero() {
		q.Set("endDate", f.EndDate.UTC().Format(time.RFC3339))
	}
	return q
}

func (c *Client) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	return call[dto.OrderResponse](ctx, c, http.MethodPost, "/orders", nil, in)
}

// ListOrders una página de pedidos.
func (c *Client) ListOrders(ctx context.Context, f OrderFilter, p dto.PageRequest) (*dto.OrderListResponse, error) {
	q := f.values()
	for k, v := range pageQuery(p) {
		q[k] = v
	}
	return call[dto.OrderListResponse](ctx, c, http.MethodGet, "/orders", q, nil)
}

func (c *Client) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	return call[dto.OrderResponse](ctx, c, http.MethodGet, pathID("/orders", id), nil, nil)
}

func (c *Client) UpdateOrder(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	return call[dto.OrderResponse](ctx, c, http.MethodPatch, pathID("/orders", id), nil, in)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathID("/orders", id), nil, nil, nil)
}

// FilterOrders llama a /orders/filter/{by} con los parámetros propios de ese filtro,
// p.ej. FilterOrders(ctx, "high-profit", url.Values{"minProfit": {"30"}}).
func (c *Client) FilterOrders(ctx context.Context, by string, params url.Values) ([]dto.OrderResponse, error) {
	return callList[dto.OrderResponse](ctx, c, http.MethodGet, "/orders/filter/"+url.PathEscape(by), params, nil)
}

func (c *Client) OrderStats(ctx context.Context) (*dto.OrderStats, error) {
	return call[dto.OrderStats](ctx, c, http.MethodGet, "/orders/stats", nil, nil)
}

func (c *Client) OrderTrackingStatus(ctx context.Context) ([]dto.GroupCount, error) {
	return callList[dto.GroupCount](ctx, c, http.MethodGet, "/orders/stats/tracking-status", nil, nil)
}

// ExportOrdersPDF descarga el reporte PDF con los filtros dados.
func (c *Client) ExportOrdersPDF(ctx context.Context, f OrderFilter) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/orders/export/pdf", f.values(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	pdf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client: leer PDF: %w", err)
	}
	return pdf, nil
}

// ── Tasks ────────────────────────────────────────────────────────────────────

func (c *Client) CreateTask(ctx context.Context, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodPost, "/tasks", nil, in)
}

func (c *Client) ListTasks(ctx context.Context, f dto.TaskQuery) ([]dto.TaskResponse, error) {
	q := url.Values{}
	setIf(q, "status", f.Status)
	setIf(q, "type", f.Type)
	setIf(q, "account", f.Account)
	return callList[dto.TaskResponse](ctx, c, http.MethodGet, "/tasks", q, nil)
}

func (c *Client) GetTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodGet, pathID("/tasks", id), nil, nil)
}

func (c *Client) UpdateTask(ctx context.Context, id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodPatch, pathID("/tasks", id), nil, in)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathID("/tasks", id), nil, nil, nil)
}

func (c *Client) StartTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	return c.taskAction(ctx, id, "start", nil)
}

func (c *Client) PauseTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	return c.taskAction(ctx, id, "pause", nil)
}

func (c *Client) CompleteTask(ctx context.Context, id string, result map[string]interface{}) (*dto.TaskResponse, error) {
	return c.taskAction(ctx, id, "complete", dto.CompleteTaskRequest{Result: result})
}

func (c *Client) FailTask(ctx context.Context, id, reason string) (*dto.TaskResponse, error) {
	return c.taskAction(ctx, id, "fail", dto.FailTaskRequest{Reason: reason})
}

func (c *Client) SetTaskProgress(ctx context.Context, id string, progress int) (*dto.TaskResponse, error) {
	return c.taskAction(ctx, id, "progress", dto.TaskProgressRequest{Progress: &progress})
}

func (c *Client) AddTaskLog(ctx context.Context, id, line string) (*dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodPost, pathID("/tasks", id, "logs"), nil, dto.TaskLogRequest{Line: line})
}

func (c *Client) taskAction(ctx context.Context, id, action string, in interface{}) (*dto.TaskResponse, error) {
	return call[dto.TaskResponse](ctx, c, http.MethodPatch, pathID("/tasks", id, action), nil, in)
}

// ── Users ────────────────────────────────────────────────────────────────────

func (c *Client) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	return call[dto.UserResponse](ctx, c, http.MethodPost, "/users", nil, in)
}

// ListUsers una página de usuarios; search y role son opcionales.
func (c *Client) ListUsers(ctx context.Context, search, role string, p dto.PageRequest) (*dto.UserListResponse, error) {
	q := pageQuery(p)
	setIf(q, "search", search)
	setIf(q, "role", role)
	return call[dto.UserListResponse](ctx, c, http.MethodGet, "/users", q, nil)
}

func (c *Client) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	return call[dto.UserResponse](ctx, c, http.MethodGet, pathID("/users", id), nil, nil)
}

func (c *Client) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return call[dto.UserResponse](ctx, c, http.MethodPatch, pathID("/users", id), nil, in)
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, pathID("/users", id), nil, nil, nil)
}

// ── Stats ────────────────────────────────────────────────────────────────────

func (c *Client) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	return call[dto.DashboardResponse](ctx, c, http.MethodGet, "/stats/dashboard", nil, nil)
}

func (c *Client) Charts(ctx context.Context) (*dto.ChartsResponse, error) {
	return call[dto.ChartsResponse](ctx, c, http.MethodGet, "/stats/charts", nil, nil)
}
