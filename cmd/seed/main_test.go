package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ludamus.io/enrolld/internal/pkg/logger"
	"ludamus.io/enrolld/internal/testutil"
)

func init() {
	_ = logger.Init("error", "console")
}

func TestSeed_CreatesDevDataset(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "seed")
	ctx := t.Context()

	require.NoError(t, seed(ctx, client))

	spheres, err := client.Sphere.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, spheres)

	sessions, err := client.Session.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, sessions)

	agenda, err := client.AgendaItem.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, agenda)

	configs, err := client.EnrollmentConfig.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, configs)

	users, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, users)

	grants, err := client.UserEnrollmentConfig.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, grants)
}

func TestSeed_SecondRunIsNoOp(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "seed_rerun")
	ctx := t.Context()

	require.NoError(t, seed(ctx, client))
	require.NoError(t, seed(ctx, client))

	spheres, err := client.Sphere.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, spheres)

	sessions, err := client.Session.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, sessions)
}
