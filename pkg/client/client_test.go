package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-admin-api/internal/application/dto"
	"github.com/jhoicas/marketplace-admin-api/pkg/client"
)

// recorded última petición recibida por el servidor fake.
type recorded struct {
	method string
	path   string
	query  url.Values
	auth   string
	body   map[string]interface{}
}

func newServer(t *testing.T, status int, response interface{}) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.auth = r.Header.Get("Authorization")
		rec.body = nil
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			assert.NoError(t, json.Unmarshal(raw, &rec.body))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestLogin_GuardaTokenYLoEnvia(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, dto.LoginResponse{Token: "tok-123", User: dto.UserResponse{Email: "a@b.com"}})
	c := client.New(srv.URL + "/")

	out, err := c.Login(context.Background(), "a@b.com", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", out.Token)
	assert.Equal(t, "tok-123", c.Token())
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/auth/login", rec.path)
	assert.Equal(t, "a@b.com", rec.body["email"])
	assert.Empty(t, rec.auth, "login no envía token")

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", rec.auth)
	assert.Equal(t, "/api/auth/me", rec.path)
}

func TestAPIError_DecodificaErrorResponse(t *testing.T) {
	srv, _ := newServer(t, http.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: "sku duplicado"})
	c := client.New(srv.URL, client.WithToken("x"))

	_, err := c.CreateProduct(context.Background(), dto.CreateProductRequest{SKU: "A"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "DUPLICATE", apiErr.Code)
	assert.True(t, client.IsStatus(err, http.StatusConflict))
	assert.False(t, client.IsStatus(err, http.StatusNotFound))
}

func TestListUsers_EnviaPaginaYFiltros(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, dto.UserListResponse{
		Data: []dto.UserResponse{{ID: "u1"}},
		Meta: dto.PageMeta{Total: 30, Page: 2, Limit: 10, TotalPages: 3},
	})
	c := client.New(srv.URL)

	out, err := c.ListUsers(context.Background(), "ana", "admin", dto.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Meta.TotalPages)
	assert.Equal(t, "2", rec.query.Get("page"))
	assert.Equal(t, "10", rec.query.Get("limit"))
	assert.Equal(t, "ana", rec.query.Get("search"))
	assert.Equal(t, "admin", rec.query.Get("role"))
}

func TestListOrders_FechasEnRFC3339(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, dto.OrderListResponse{Data: []dto.OrderResponse{}})
	c := client.New(srv.URL)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := c.ListOrders(context.Background(), client.OrderFilter{TrackingStatus: "Shipped", StartDate: start}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T00:00:00Z", rec.query.Get("startDate"))
	assert.Equal(t, "Shipped", rec.query.Get("trackingStatus"))
	assert.False(t, rec.query.Has("endDate"))
	assert.False(t, rec.query.Has("page"))
}

func TestFilterOrders_RutaYParametros(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, []dto.OrderResponse{{ID: "o1"}})
	c := client.New(srv.URL)

	out, err := c.FilterOrders(context.Background(), "high-profit", url.Values{"minProfit": {"30"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "/api/orders/filter/high-profit", rec.path)
	assert.Equal(t, "30", rec.query.Get("minProfit"))
}

func TestTaskActions_MetodoYRuta(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, dto.TaskResponse{ID: "t 1", Status: "Running"})
	c := client.New(srv.URL)
	ctx := context.Background()

	_, err := c.StartTask(ctx, "t 1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/api/tasks/t 1/start", rec.path, "el id viaja escapado y el servidor lo decodifica")
	assert.Nil(t, rec.body)

	_, err = c.SetTaskProgress(ctx, "t1", 40)
	require.NoError(t, err)
	assert.Equal(t, float64(40), rec.body["progress"])

	_, err = c.AddTaskLog(ctx, "t1", "linea")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/api/tasks/t1/logs", rec.path)
}

func TestListAccounts_RespuestaVaciaNoEsNil(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, []dto.AccountResponse{})
	out, err := client.New(srv.URL).ListAccounts(context.Background(), dto.AccountQuery{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestExportOrdersPDF_DevuelveBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.3 fake"))
	}))
	defer srv.Close()

	pdf, err := client.New(srv.URL).ExportOrdersPDF(context.Background(), client.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 fake", string(pdf))
}

func TestContextoCancelado(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, dto.ChartsResponse{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.New(srv.URL).Charts(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
