package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-studio/internal/server"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

const demoDoc = `{
	"invoiceNumber": "INV-7",
	"date": "2026-08-28",
	"billTo": "Salmiya Electronics",
	"contactNumber": "+965 65553025",
	"items": [
		{"description": "Cable", "rate": "5", "quantity": "3", "discount": "0"},
		{"description": "Case", "rate": "20", "quantity": "1", "discount": "10"}
	]
}`

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestComputeEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/compute", strings.NewReader(demoDoc))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ComputeResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	require.Len(t, response.Items, 2)
	assert.Equal(t, "15.000", response.Items[0].Amount)
	assert.Equal(t, "18.000", response.Items[1].Amount)
	assert.Equal(t, "33.000", response.Total)
}

func TestComputeEndpoint_MalformedBody(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/compute", strings.NewReader("{oops"))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenderEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/render", strings.NewReader(demoDoc))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestExportEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/export", strings.NewReader(demoDoc))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Invoice_INV-7.pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestLinkEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/link", strings.NewReader(demoDoc))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.LinkResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Contains(t, response.URL, "https://wa.me/96565553025?text=")
	assert.Contains(t, response.Summary, "*Total Amount: KWD 33.000*")
}

func TestLinkEndpoint_NoContact(t *testing.T) {
	srv := newTestServer()

	doc := `{"items":[{"description":"Cable","rate":"5","quantity":"3"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoice/link", strings.NewReader(doc))
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
