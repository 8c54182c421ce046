package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ipartes/quote-service/internal/api/handlers"
	"github.com/ipartes/quote-service/internal/quote"
	"github.com/ipartes/quote-service/internal/store"
	"github.com/ipartes/quote-service/pkg/extract"
	extractMocks "github.com/ipartes/quote-service/pkg/extract/mocks"
	"github.com/ipartes/quote-service/pkg/logger"
)

func newQuoteAPI(t *testing.T, backend extract.LLMBackend, st store.Store) humatest.TestAPI {
	t.Helper()

	svc := quote.NewService(st, backend, quote.WithLogger(logger.Nop()))
	h := handlers.NewQuoteHandler(svc)

	_, api := humatest.New(t)
	handlers.RegisterQuoteRoutes(api, h)
	return api
}

func TestQuoteHandler_GenerateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*extractMocks.MockLLMBackend)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid request returns gateway draft",
			body: map[string]any{"input": "EMERSON 1151 3 unidades"},
			setupMock: func(m *extractMocks.MockLLMBackend) {
				m.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return(extract.GenerateResponse{Content: "Hello Sales Team,\n\ndraft body"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `Hello Sales Team,`,
		},
		{
			name:       "missing input returns 422",
			body:       map[string]any{},
			setupMock:  func(_ *extractMocks.MockLLMBackend) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected required property input to be present`,
		},
		{
			name:       "empty input returns 422",
			body:       map[string]any{"input": ""},
			setupMock:  func(_ *extractMocks.MockLLMBackend) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `expected length >= 1`,
		},
		{
			name: "gateway failure returns local draft",
			body: map[string]any{"input": "EMERSON 1151 3 unidades"},
			setupMock: func(m *extractMocks.MockLLMBackend) {
				m.EXPECT().
					Generate(mock.Anything, mock.Anything).
					Return(extract.GenerateResponse{}, fmt.Errorf("%w: boom", extract.ErrGateway)).
					Once()
				m.EXPECT().Name().Return("openai").Maybe()
			},
			wantStatus: http.StatusOK,
			wantBody:   `Hello Sales Team,`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := extractMocks.NewMockLLMBackend(t)
			tt.setupMock(backend)

			api := newQuoteAPI(t, backend, store.NewMemoryStore())

			resp := api.Post("/api/v1/generate-email", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestQuoteHandler_FindSuppliers(t *testing.T) {
	t.Parallel()

	t.Run("merges registered suppliers first", func(t *testing.T) {
		t.Parallel()

		backend := extractMocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{
				Content: "Try sales@grainger.com and export@rs-components.com.",
			}, nil).
			Once()

		st := store.NewMemoryStore()
		_, _, err := st.UpsertSupplier(t.Context(), "EMERSON", "ours@emerson.com")
		require.NoError(t, err)

		api := newQuoteAPI(t, backend, st)

		resp := api.Post("/api/v1/find-suppliers", map[string]any{
			"input": "EMERSON 1151 transmissor de pressão",
		})
		require.Equal(t, http.StatusOK, resp.Code)

		body := resp.Body.String()
		assert.Contains(t, body, `"registered_suppliers":["ours@emerson.com"]`)
		assert.Contains(t, body, `"suppliers":["ours@emerson.com","sales@grainger.com","export@rs-components.com"]`)
	})

	t.Run("gateway failure falls back to curated contacts", func(t *testing.T) {
		t.Parallel()

		backend := extractMocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{}, fmt.Errorf("%w: down", extract.ErrGateway)).
			Once()
		backend.EXPECT().Name().Return("openai").Maybe()

		api := newQuoteAPI(t, backend, store.NewMemoryStore())

		resp := api.Post("/api/v1/find-suppliers", map[string]any{
			"input": "EMERSON 1151 medidor de vazão",
		})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "FlowSupport@Emerson.com")
		assert.Contains(t, resp.Body.String(), `"registered_suppliers":[]`)
	})

	t.Run("missing input returns 422", func(t *testing.T) {
		t.Parallel()

		backend := extractMocks.NewMockLLMBackend(t)
		api := newQuoteAPI(t, backend, store.NewMemoryStore())

		resp := api.Post("/api/v1/find-suppliers", map[string]any{})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}
