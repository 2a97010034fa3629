package integration_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"tessalp/internal/gym"
)

func createTestGym(t *testing.T, svc gym.Service, name string) *gym.Gym {
	g, err := svc.CreateGym(context.Background(), gym.CreateGymRequest{
		Name:     name,
		Location: "Av. Siempre Viva 123",
		Phone:    "555-0100",
		Email:    "contacto@tessalp.test",
		Hours:    "L-V 6:00-22:00",
	})
	require.NoError(t, err)
	return g
}

func TestResolveGym_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	conn := setupTestDB(t)
	defer conn.Close()
	cleanDatabase(t, conn)

	svc := gym.NewService(gym.NewRepository(conn), "test-access-key")
	created := createTestGym(t, svc, "Tessalp Centro")
	require.Equal(t, "tessalp-centro", created.Slug)

	ctx := context.Background()

	bySlug, err := svc.Resolve(ctx, "tessalp-centro")
	require.NoError(t, err)
	require.Equal(t, created.ID, bySlug.ID)

	// A slug typed with spaces instead of dashes still resolves.
	bySpaces, err := svc.Resolve(ctx, "tessalp centro")
	require.NoError(t, err)
	require.Equal(t, created.ID, bySpaces.ID)

	byID, err := svc.Resolve(ctx, strconv.Itoa(created.ID))
	require.NoError(t, err)
	require.Equal(t, created.ID, byID.ID)

	bySubstring, err := svc.Resolve(ctx, "centro")
	require.NoError(t, err)
	require.Equal(t, created.ID, bySubstring.ID)

	_, err = svc.Resolve(ctx, "no-such-gym")
	require.ErrorIs(t, err, gym.ErrGymNotFound)
}

func TestResolveGym_AmbiguousSubstringPicksOldest_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	conn := setupTestDB(t)
	defer conn.Close()
	cleanDatabase(t, conn)

	svc := gym.NewService(gym.NewRepository(conn), "test-access-key")
	first := createTestGym(t, svc, "Gimnasio Norte")
	createTestGym(t, svc, "Gimnasio Sur")

	got, err := svc.Resolve(context.Background(), "gimnasio")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
}

func TestCreateGym_SlugConflict_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	conn := setupTestDB(t)
	defer conn.Close()
	cleanDatabase(t, conn)

	svc := gym.NewService(gym.NewRepository(conn), "test-access-key")
	createTestGym(t, svc, "Tessalp Centro")

	_, err := svc.CreateGym(context.Background(), gym.CreateGymRequest{
		Name:     "Tessalp Centro",
		Location: "Otra sede",
		Phone:    "555-0101",
		Email:    "otra@tessalp.test",
		Hours:    "L-V 6:00-22:00",
	})
	require.ErrorIs(t, err, gym.ErrSlugTaken)
}
