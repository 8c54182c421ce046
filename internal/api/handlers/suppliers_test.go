package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipartes/quote-service/internal/api/handlers"
	"github.com/ipartes/quote-service/internal/store"
	domain "github.com/ipartes/quote-service/pkg/types"
)

func newSupplierServer(t *testing.T) (*echo.Echo, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	e := echo.New()
	handlers.RegisterSupplierRoutes(e, handlers.NewSupplierHandler(st))
	return e, st
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSupplierHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("new manufacturer returns 201", func(t *testing.T) {
		t.Parallel()
		e, _ := newSupplierServer(t)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers",
			`{"manufacturer":"EMERSON","email":"sales@emerson.com"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var sup domain.Supplier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sup))
		assert.NotEmpty(t, sup.ID)
		assert.Equal(t, "EMERSON", sup.Manufacturer)
		assert.Equal(t, []string{"sales@emerson.com"}, sup.Emails)
	})

	t.Run("existing manufacturer appends and returns 200", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		_, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers",
			`{"manufacturer":"emerson","email":"quotes@emerson.com"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var sup domain.Supplier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sup))
		assert.Equal(t, "EMERSON", sup.Manufacturer)
		assert.Equal(t, []string{"sales@emerson.com", "quotes@emerson.com"}, sup.Emails)
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		_, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers",
			`{"manufacturer":"EMERSON","email":"sales@emerson.com"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "already registered")
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()
		e, _ := newSupplierServer(t)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers", `{"manufacturer":"  "}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "required")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		t.Parallel()
		e, _ := newSupplierServer(t)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers", `not json`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSupplierHandler_List(t *testing.T) {
	t.Parallel()

	e, st := newSupplierServer(t)
	_, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
	require.NoError(t, err)
	_, _, err = st.UpsertSupplier(t.Context(), "SHINING 3D", "sales@shining3d.com")
	require.NoError(t, err)

	rec := doJSON(e, http.MethodGet, "/api/v1/suppliers", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var suppliers []domain.Supplier
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suppliers))
	require.Len(t, suppliers, 2)
	assert.Equal(t, "EMERSON", suppliers[0].Manufacturer)
	assert.Equal(t, "SHINING 3D", suppliers[1].Manufacturer)
}

func TestSupplierHandler_AddEmail(t *testing.T) {
	t.Parallel()

	t.Run("appends to existing supplier", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		sup, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers/"+sup.ID+"/emails",
			`{"email":"quotes@emerson.com"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.Supplier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []string{"sales@emerson.com", "quotes@emerson.com"}, got.Emails)
	})

	t.Run("unknown supplier returns 404", func(t *testing.T) {
		t.Parallel()
		e, _ := newSupplierServer(t)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers/no-such-id/emails",
			`{"email":"quotes@emerson.com"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		sup, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)

		rec := doJSON(e, http.MethodPost, "/api/v1/suppliers/"+sup.ID+"/emails",
			`{"email":"sales@emerson.com"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSupplierHandler_RemoveEmail(t *testing.T) {
	t.Parallel()

	t.Run("removes one of several emails", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		sup, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)
		_, err = st.AddEmail(t.Context(), sup.ID, "quotes@emerson.com")
		require.NoError(t, err)

		path := "/api/v1/suppliers/" + sup.ID + "/emails/" + url.PathEscape("quotes@emerson.com")
		rec := doJSON(e, http.MethodDelete, path, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.Supplier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []string{"sales@emerson.com"}, got.Emails)
	})

	t.Run("removing last email deletes the record", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		sup, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)

		path := "/api/v1/suppliers/" + sup.ID + "/emails/" + url.PathEscape("sales@emerson.com")
		rec := doJSON(e, http.MethodDelete, path, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"supplier removed"}`, rec.Body.String())

		_, err = st.GetSupplier(t.Context(), sup.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		sup, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)

		path := "/api/v1/suppliers/" + sup.ID + "/emails/" + url.PathEscape("missing@emerson.com")
		rec := doJSON(e, http.MethodDelete, path, "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSupplierHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes the supplier", func(t *testing.T) {
		t.Parallel()
		e, st := newSupplierServer(t)
		sup, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "sales@emerson.com")
		require.NoError(t, err)

		rec := doJSON(e, http.MethodDelete, "/api/v1/suppliers/"+sup.ID, "")

		require.Equal(t, http.StatusNoContent, rec.Code)

		_, err = st.GetSupplier(t.Context(), sup.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown supplier returns 404", func(t *testing.T) {
		t.Parallel()
		e, _ := newSupplierServer(t)

		rec := doJSON(e, http.MethodDelete, "/api/v1/suppliers/no-such-id", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
