package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ipartes/quote-service/internal/quote"
)

// QuoteService is the part of the quote service the handlers need.
type QuoteService interface {
	GenerateEmail(ctx context.Context, input string) (string, error)
	FindSuppliers(ctx context.Context, input string) (*quote.SupplierResult, error)
}

// QuoteHandler handles quotation email and supplier discovery requests.
type QuoteHandler struct {
	svc QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(svc QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

// GenerateEmailInput is the request body for the generate-email endpoint.
type GenerateEmailInput struct {
	Body struct {
		Input string `json:"input" minLength:"1" doc:"Free-text procurement request" example:"EMERSON 1151 ; conexão ao processo: flange 6\" ; 3 unidades"`
	}
}

// GenerateEmailOutput is the response body for the generate-email endpoint.
type GenerateEmailOutput struct {
	Body struct {
		Email string `json:"email" doc:"Quotation email draft in English"`
	}
}

// GenerateEmail produces a quotation email for a free-text request.
func (h *QuoteHandler) GenerateEmail(
	ctx context.Context,
	input *GenerateEmailInput,
) (*GenerateEmailOutput, error) {
	email, err := h.svc.GenerateEmail(ctx, input.Body.Input)
	if err != nil {
		return nil, mapQuoteError(err)
	}

	resp := &GenerateEmailOutput{}
	resp.Body.Email = email
	return resp, nil
}

// FindSuppliersInput is the request body for the find-suppliers endpoint.
type FindSuppliersInput struct {
	Body struct {
		Input string `json:"input" minLength:"1" doc:"Free-text procurement request"`
	}
}

// FindSuppliersOutput is the response body for the find-suppliers endpoint.
type FindSuppliersOutput struct {
	Body struct {
		Suppliers           []string `json:"suppliers" doc:"Merged distributor contact emails, registered entries first"`
		RegisteredSuppliers []string `json:"registered_suppliers" doc:"Subset sourced from the supplier directory"`
	}
}

// FindSuppliers resolves distributor contact emails for a free-text request.
func (h *QuoteHandler) FindSuppliers(
	ctx context.Context,
	input *FindSuppliersInput,
) (*FindSuppliersOutput, error) {
	res, err := h.svc.FindSuppliers(ctx, input.Body.Input)
	if err != nil {
		return nil, mapQuoteError(err)
	}

	resp := &FindSuppliersOutput{}
	resp.Body.Suppliers = res.Suppliers
	resp.Body.RegisteredSuppliers = res.Registered
	if resp.Body.Suppliers == nil {
		resp.Body.Suppliers = []string{}
	}
	if resp.Body.RegisteredSuppliers == nil {
		resp.Body.RegisteredSuppliers = []string{}
	}
	return resp, nil
}

func mapQuoteError(err error) error {
	if errors.Is(err, quote.ErrEmptyInput) {
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return huma.Error500InternalServerError("processing request: " + err.Error())
}

// RegisterQuoteRoutes registers the quotation endpoints with the Huma API.
func RegisterQuoteRoutes(api huma.API, h *QuoteHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-email",
		Method:      http.MethodPost,
		Path:        "/api/v1/generate-email",
		Summary:     "Generate a quotation email",
		Description: "Extracts product fields from free text and produces an English " +
			"quotation email. Falls back to a locally composed draft when the " +
			"completion gateway is unavailable.",
		Tags:   []string{"quote"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.GenerateEmail)

	huma.Register(api, huma.Operation{
		OperationID: "find-suppliers",
		Method:      http.MethodPost,
		Path:        "/api/v1/find-suppliers",
		Summary:     "Find distributor contacts",
		Description: "Resolves distributor contact emails for a procurement request, " +
			"merging registered suppliers with discovered contacts.",
		Tags:   []string{"quote"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.FindSuppliers)
}
