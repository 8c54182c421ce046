package quote_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ipartes/quote-service/internal/quote"
	"github.com/ipartes/quote-service/internal/store"
	"github.com/ipartes/quote-service/pkg/extract"
	"github.com/ipartes/quote-service/pkg/extract/mocks"
	"github.com/ipartes/quote-service/pkg/logger"
)

func newService(t *testing.T, backend extract.LLMBackend) (*quote.Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	svc := quote.NewService(st, backend, quote.WithLogger(logger.Nop()))
	return svc, st
}

func TestGenerateEmail(t *testing.T) {
	t.Parallel()

	t.Run("returns gateway content", func(t *testing.T) {
		t.Parallel()

		backend := mocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Run(func(_ context.Context, req extract.GenerateRequest) {
				assert.Contains(t, req.SystemMsg, "Hello Sales Team,")
				assert.Contains(t, req.Prompt, "EMERSON 1151")
			}).
			Return(extract.GenerateResponse{Content: "Hello Sales Team,\n\ndraft"}, nil)

		svc, _ := newService(t, backend)

		email, err := svc.GenerateEmail(context.Background(), "EMERSON 1151 vazão máx. 300 kg/h")
		require.NoError(t, err)
		assert.Equal(t, "Hello Sales Team,\n\ndraft", email)
	})

	t.Run("empty input rejected", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, mocks.NewMockLLMBackend(t))

		_, err := svc.GenerateEmail(context.Background(), "   ")
		assert.ErrorIs(t, err, quote.ErrEmptyInput)
	})

	t.Run("gateway failure degrades to local draft", func(t *testing.T) {
		t.Parallel()

		backend := mocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{}, fmt.Errorf("%w: boom", extract.ErrGateway))
		backend.EXPECT().Name().Return("openai").Maybe()

		svc, _ := newService(t, backend)

		email, err := svc.GenerateEmail(context.Background(), "EMERSON 1151 ; 3 unidades")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(email, "Hello Sales Team,"))
		assert.Contains(t, email, "3 Unit(s) OF EMERSON 1151")
		assert.Contains(t, email, "Shipping Address:")
	})
}

func TestFindSuppliers(t *testing.T) {
	t.Parallel()

	const searchResponse = "Grainger (USA)\nEmail: sales@grainger.com\n" +
		"RS Components (UK)\nEmail: export@rs-components.com\n"

	t.Run("merges registered before discovered", func(t *testing.T) {
		t.Parallel()

		backend := mocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{Content: searchResponse}, nil)

		svc, st := newService(t, backend)
		_, _, err := st.UpsertSupplier(context.Background(), "Emerson", "ours@emerson.com")
		require.NoError(t, err)

		res, err := svc.FindSuppliers(context.Background(), "EMERSON 1151 sensor de vazão")
		require.NoError(t, err)

		assert.Equal(t, "EMERSON", res.Request.Manufacturer)
		assert.Equal(t, []string{"ours@emerson.com"}, res.Registered)
		assert.Equal(t,
			[]string{"ours@emerson.com", "sales@grainger.com", "export@rs-components.com"},
			res.Suppliers,
		)
	})

	t.Run("empty input rejected", func(t *testing.T) {
		t.Parallel()

		svc, _ := newService(t, mocks.NewMockLLMBackend(t))

		_, err := svc.FindSuppliers(context.Background(), "")
		assert.ErrorIs(t, err, quote.ErrEmptyInput)
	})

	t.Run("no usable emails falls back to tables", func(t *testing.T) {
		t.Parallel()

		backend := mocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{Content: "I cannot share contact details."}, nil)

		svc, _ := newService(t, backend)

		res, err := svc.FindSuppliers(context.Background(), "EMERSON 1151 vazão máx. 300 kg/h")
		require.NoError(t, err)

		assert.Equal(t, "FlowSupport@Emerson.com", res.Suppliers[0])
		assert.NotEmpty(t, res.Suppliers)
		assert.Empty(t, res.Registered)
	})

	t.Run("placeholder pair falls back to tables", func(t *testing.T) {
		t.Parallel()

		backend := mocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{
				Content: "Company A\nEmail: sales@company.com\nCompany B\nEmail: info@company.com",
			}, nil)

		svc, _ := newService(t, backend)

		res, err := svc.FindSuppliers(context.Background(), "scanner EINSCAN PRO HD")
		require.NoError(t, err)

		assert.Contains(t, res.Suppliers, "sales@shining3d.com")
		assert.NotContains(t, res.Suppliers, "sales@company.com")
	})

	t.Run("gateway failure falls back to tables", func(t *testing.T) {
		t.Parallel()

		backend := mocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{}, fmt.Errorf("%w: down", extract.ErrGateway))
		backend.EXPECT().Name().Return("openai").Maybe()

		svc, st := newService(t, backend)
		_, _, err := st.UpsertSupplier(context.Background(), "Rotork", "ours@rotork.com")
		require.NoError(t, err)

		res, err := svc.FindSuppliers(context.Background(), "ROTORK atuador elétrico")
		require.NoError(t, err)

		// Registered first, then table contacts, deduplicated.
		assert.Equal(t, "ours@rotork.com", res.Suppliers[0])
		assert.Contains(t, res.Suppliers, "sales@rotork.com")
	})

	t.Run("registered emails deduplicated across matching suppliers", func(t *testing.T) {
		t.Parallel()

		backend := mocks.NewMockLLMBackend(t)
		backend.EXPECT().
			Generate(mock.Anything, mock.Anything).
			Return(extract.GenerateResponse{Content: searchResponse}, nil)

		svc, st := newService(t, backend)
		ctx := context.Background()
		_, _, err := st.UpsertSupplier(ctx, "Emerson", "shared@emerson.com")
		require.NoError(t, err)
		_, _, err = st.UpsertSupplier(ctx, "Emerson Automation", "shared@emerson.com")
		require.NoError(t, err)

		res, err := svc.FindSuppliers(ctx, "EMERSON 1151 sensor")
		require.NoError(t, err)

		assert.Equal(t, []string{"shared@emerson.com"}, res.Registered)
	})
}
