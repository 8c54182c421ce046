package client

import "context"

// FindSuppliersResponse holds the resolved distributor contacts for a
// procurement request, registered directory entries first.
type FindSuppliersResponse struct {
	Suppliers           []string `json:"suppliers"`
	RegisteredSuppliers []string `json:"registered_suppliers"`
}

// GenerateEmail produces a quotation email draft for a free-text
// procurement request.
func (c *Client) GenerateEmail(ctx context.Context, input string) (string, error) {
	var resp struct {
		Email string `json:"email"`
	}
	body := map[string]string{"input": input}
	if err := c.post(ctx, "/api/v1/generate-email", body, &resp); err != nil {
		return "", err
	}
	return resp.Email, nil
}

// FindSuppliers resolves distributor contact emails for a free-text
// procurement request.
func (c *Client) FindSuppliers(ctx context.Context, input string) (*FindSuppliersResponse, error) {
	var resp FindSuppliersResponse
	body := map[string]string{"input": input}
	if err := c.post(ctx, "/api/v1/find-suppliers", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
