package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ipartes/quote-service/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListSuppliers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListSuppliers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListSuppliers(t *testing.T) {
	t.Parallel()

	suppliers := []domain.Supplier{
		{ID: "s1", Manufacturer: "EMERSON", Emails: []string{"sales@emerson.com"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/suppliers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suppliers)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.ListSuppliers(context.Background())
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "s1", result[0].ID)
}

func TestClient_CreateSupplier(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req supplierRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "EMERSON", req.Manufacturer)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Supplier{
			ID:           "s-created",
			Manufacturer: req.Manufacturer,
			Emails:       []string{req.Email},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.CreateSupplier(context.Background(), "EMERSON", "sales@emerson.com")
	require.NoError(t, err)
	assert.Equal(t, "s-created", result.ID)
	assert.Equal(t, []string{"sales@emerson.com"}, result.Emails)
}

func TestClient_RemoveSupplierEmail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/suppliers/s1/emails/sales@emerson.com", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "supplier removed"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.RemoveSupplierEmail(context.Background(), "s1", "sales@emerson.com")
	require.NoError(t, err)
}

func TestClient_DeleteSupplier(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/suppliers/s1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteSupplier(context.Background(), "s1")
	require.NoError(t, err)
}

func TestClient_GenerateEmail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/generate-email", r.URL.Path)

		var req map[string]string
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "EMERSON 1151 3 unidades", req["input"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"email": "Hello Sales Team,\n\ndraft"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	email, err := c.GenerateEmail(context.Background(), "EMERSON 1151 3 unidades")
	require.NoError(t, err)
	assert.Contains(t, email, "Hello Sales Team,")
}

func TestClient_FindSuppliers(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/find-suppliers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(FindSuppliersResponse{
			Suppliers:           []string{"ours@emerson.com", "sales@grainger.com"},
			RegisteredSuppliers: []string{"ours@emerson.com"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.FindSuppliers(context.Background(), "EMERSON 1151")
	require.NoError(t, err)
	assert.Equal(t, []string{"ours@emerson.com", "sales@grainger.com"}, resp.Suppliers)
	assert.Equal(t, []string{"ours@emerson.com"}, resp.RegisteredSuppliers)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
