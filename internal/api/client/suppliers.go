package client

import (
	"context"
	"net/url"

	domain "github.com/ipartes/quote-service/pkg/types"
)

// supplierRequest contains the fields the API accepts for create/add-email.
type supplierRequest struct {
	Manufacturer string `json:"manufacturer,omitempty"`
	Email        string `json:"email"`
}

// ListSuppliers returns every registered supplier.
func (c *Client) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	if err := c.get(ctx, "/api/v1/suppliers", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// CreateSupplier registers an email under a manufacturer. The server
// appends to an existing record when the manufacturer is already known.
func (c *Client) CreateSupplier(ctx context.Context, manufacturer, email string) (*domain.Supplier, error) {
	var created domain.Supplier
	req := supplierRequest{Manufacturer: manufacturer, Email: email}
	if err := c.post(ctx, "/api/v1/suppliers", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddSupplierEmail appends an email to an existing supplier.
func (c *Client) AddSupplierEmail(ctx context.Context, id, email string) (*domain.Supplier, error) {
	var sup domain.Supplier
	req := supplierRequest{Email: email}
	if err := c.post(ctx, "/api/v1/suppliers/"+id+"/emails", req, &sup); err != nil {
		return nil, err
	}
	return &sup, nil
}

// RemoveSupplierEmail removes an email from a supplier. Removing the last
// email deletes the record on the server.
func (c *Client) RemoveSupplierEmail(ctx context.Context, id, email string) error {
	path := "/api/v1/suppliers/" + id + "/emails/" + url.PathEscape(email)
	return c.del(ctx, path, nil)
}

// DeleteSupplier deletes a supplier by ID.
func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/suppliers/"+id, nil)
}
