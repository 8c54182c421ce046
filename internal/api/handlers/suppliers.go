package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ipartes/quote-service/internal/metrics"
	"github.com/ipartes/quote-service/internal/store"
)

// SupplierHandler implements the supplier directory CRUD endpoints.
type SupplierHandler struct {
	store store.Store
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(s store.Store) *SupplierHandler {
	return &SupplierHandler{store: s}
}

// RegisterSupplierRoutes mounts the CRUD endpoints on the Echo instance.
func RegisterSupplierRoutes(e *echo.Echo, h *SupplierHandler) {
	g := e.Group("/api/v1/suppliers")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/:id/emails", h.AddEmail)
	g.DELETE("/:id/emails/:email", h.RemoveEmail)
	g.DELETE("/:id", h.Delete)
}

// supplierRequest is the body for create and add-email calls.
type supplierRequest struct {
	Manufacturer string `json:"manufacturer"`
	Email        string `json:"email"`
}

// List returns every registered supplier.
func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.store.ListSuppliers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "listing suppliers"})
	}
	h.updateDirectoryGauge(c)
	return c.JSON(http.StatusOK, suppliers)
}

// Create registers an email under a manufacturer. A new manufacturer gets
// 201 with a fresh record; an existing one gets 200 with the email
// appended; a duplicate email gets 400.
func (h *SupplierHandler) Create(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	req.Manufacturer = strings.TrimSpace(req.Manufacturer)
	req.Email = strings.TrimSpace(req.Email)
	if req.Manufacturer == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "manufacturer and email are required"})
	}

	sup, created, err := h.store.UpsertSupplier(c.Request().Context(), req.Manufacturer, req.Email)
	if errors.Is(err, store.ErrEmailExists) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email already registered for this manufacturer"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "saving supplier"})
	}

	h.updateDirectoryGauge(c)
	if created {
		return c.JSON(http.StatusCreated, sup)
	}
	return c.JSON(http.StatusOK, sup)
}

// AddEmail appends an email to an existing supplier.
func (h *SupplierHandler) AddEmail(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email is required"})
	}

	sup, err := h.store.AddEmail(c.Request().Context(), c.Param("id"), req.Email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "supplier not found"})
	case errors.Is(err, store.ErrEmailExists):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email already registered for this manufacturer"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "saving supplier"})
	}

	return c.JSON(http.StatusOK, sup)
}

// RemoveEmail deletes an email from a supplier. The email arrives URL
// encoded in the path. Removing the last email deletes the whole record.
func (h *SupplierHandler) RemoveEmail(c echo.Context) error {
	email, err := url.PathUnescape(c.Param("email"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid email parameter"})
	}

	sup, deleted, err := h.store.RemoveEmail(c.Request().Context(), c.Param("id"), email)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "supplier or email not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "removing email"})
	}

	h.updateDirectoryGauge(c)
	if deleted {
		return c.JSON(http.StatusOK, StatusResponse{Status: "supplier removed"})
	}
	return c.JSON(http.StatusOK, sup)
}

// Delete removes a supplier entirely.
func (h *SupplierHandler) Delete(c echo.Context) error {
	err := h.store.DeleteSupplier(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "supplier not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "deleting supplier"})
	}

	h.updateDirectoryGauge(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *SupplierHandler) updateDirectoryGauge(c echo.Context) {
	if n, err := h.store.CountSuppliers(c.Request().Context()); err == nil {
		metrics.SupplierDirectorySize.Set(float64(n))
	}
}
