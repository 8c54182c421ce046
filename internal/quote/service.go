// Package quote implements the two core operations of the service:
// generating a quotation email and finding distributor contacts for a
// free-text procurement request.
package quote

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ipartes/quote-service/internal/metrics"
	"github.com/ipartes/quote-service/internal/store"
	"github.com/ipartes/quote-service/pkg/extract"
	domain "github.com/ipartes/quote-service/pkg/types"
)

// ErrEmptyInput is returned when the procurement request text is missing.
var ErrEmptyInput = errors.New("input is required")

const (
	defaultGatewayTimeout = 60 * time.Second

	emailTemperature = 0.7
	emailMaxTokens   = 1000

	searchTemperature = 0.5
	searchMaxTokens   = 1500
)

// SupplierResult is the outcome of a FindSuppliers call. Suppliers holds
// the merged contact list, registered entries first; Registered repeats the
// directory-sourced subset so callers can tell the two apart.
type SupplierResult struct {
	Request    domain.ProductRequest
	Suppliers  []string
	Registered []string
}

// Service wires extractor, prompt composer, completion gateway, fallback
// tables, and the supplier directory together.
type Service struct {
	store   store.Store
	backend extract.LLMBackend
	log     *slog.Logger

	gatewayTimeout time.Duration
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = l
	}
}

// WithGatewayTimeout bounds each completion gateway call.
func WithGatewayTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.gatewayTimeout = d
	}
}

// NewService creates a Service with injected dependencies.
func NewService(st store.Store, backend extract.LLMBackend, opts ...ServiceOption) *Service {
	s := &Service{
		store:          st,
		backend:        backend,
		log:            slog.Default(),
		gatewayTimeout: defaultGatewayTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateEmail produces a quotation email for the given free-text request.
// Gateway failures degrade to a locally composed email, never to an error:
// the caller always gets a usable draft.
func (s *Service) GenerateEmail(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	req := extract.ParseProductRequest(input)

	system, user, err := extract.RenderEmailPrompt(input, req)
	if err != nil {
		return "", err
	}

	content, err := s.generate(ctx, "generate_email", extract.GenerateRequest{
		SystemMsg:   system,
		Prompt:      user,
		Temperature: emailTemperature,
		MaxTokens:   emailMaxTokens,
	})
	if err != nil {
		s.log.Warn("gateway unavailable, composing email locally",
			"backend", s.backend.Name(),
			"error", err,
		)
		metrics.FallbackTotal.WithLabelValues("generate_email").Inc()
		return extract.FallbackEmailBody(req), nil
	}

	return content, nil
}

// FindSuppliers resolves distributor contact emails for the given request.
// Discovery order: gateway response, then static fallback tables when the
// response is unusable; registered directory entries always come first in
// the merged list.
func (s *Service) FindSuppliers(ctx context.Context, input string) (*SupplierResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	req := extract.ParseProductRequest(input)

	discovered := s.discoverEmails(ctx, input, req)

	registered, err := s.registeredEmails(ctx, req.Manufacturer)
	if err != nil {
		return nil, err
	}

	return &SupplierResult{
		Request:    req,
		Suppliers:  extract.MergeEmails(registered, discovered),
		Registered: registered,
	}, nil
}

// discoverEmails asks the gateway for distributor contacts and falls back
// to the static tables when the gateway fails or returns nothing usable.
func (s *Service) discoverEmails(
	ctx context.Context,
	input string,
	req domain.ProductRequest,
) []string {
	system, user, err := extract.RenderSupplierSearchPrompt(req)
	if err != nil {
		s.log.Error("rendering supplier search prompt", "error", err)
		return s.fallbackEmails(input, req)
	}

	content, err := s.generate(ctx, "find_suppliers", extract.GenerateRequest{
		SystemMsg:   system,
		Prompt:      user,
		Temperature: searchTemperature,
		MaxTokens:   searchMaxTokens,
	})
	if err != nil {
		s.log.Warn("gateway unavailable, using fallback tables",
			"backend", s.backend.Name(),
			"error", err,
		)
		return s.fallbackEmails(input, req)
	}

	emails := extract.ParseEmails(content)
	if !extract.UsableEmails(emails) {
		s.log.Info("gateway response unusable, using fallback tables",
			"extracted", len(emails),
		)
		return s.fallbackEmails(input, req)
	}

	return emails
}

func (s *Service) fallbackEmails(input string, req domain.ProductRequest) []string {
	metrics.FallbackTotal.WithLabelValues("find_suppliers").Inc()
	return extract.FallbackEmails(input, req.Manufacturer)
}

// registeredEmails collects directory emails for suppliers matching the
// manufacturer, deduplicated in directory order.
func (s *Service) registeredEmails(ctx context.Context, manufacturer string) ([]string, error) {
	if manufacturer == "" {
		return nil, nil
	}

	suppliers, err := s.store.FindByManufacturer(ctx, manufacturer)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, sup := range suppliers {
		out = extract.MergeEmails(out, sup.Emails)
	}
	return out, nil
}

// generate runs one gateway call under the configured timeout, recording
// call duration and errors.
func (s *Service) generate(
	ctx context.Context,
	operation string,
	req extract.GenerateRequest,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	start := time.Now()
	resp, err := s.backend.Generate(ctx, req)
	metrics.GatewayCallDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GatewayErrorsTotal.WithLabelValues(operation).Inc()
		return "", err
	}

	s.log.Debug("gateway call complete",
		"operation", operation,
		"model", resp.Model,
		"total_tokens", resp.Usage.TotalTokens,
	)
	return resp.Content, nil
}
