//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ipartes/quote-service/internal/store"
)

func setupMongo(t *testing.T) *store.MongoStore {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mongoContainer.Terminate(ctx))
	})

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	s, err := store.NewMongoStore(ctx, uri, "quotes_test")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close(ctx)
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestMongoStore_Ping(t *testing.T) {
	s := setupMongo(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestMongoStore_Directory(t *testing.T) {
	s := setupMongo(t)
	runDirectoryTests(t, func(t *testing.T) store.Store {
		// One container per test binary; wipe documents between subtests.
		ctx := context.Background()
		suppliers, err := s.ListSuppliers(ctx)
		require.NoError(t, err)
		for _, sup := range suppliers {
			require.NoError(t, s.DeleteSupplier(ctx, sup.ID))
		}
		return s
	})
}

func TestMongoStore_MigrateIdempotent(t *testing.T) {
	s := setupMongo(t)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Migrate(context.Background()))
}
