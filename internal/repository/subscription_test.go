package repository

import (
	"context"
	"testing"

	"newsroom/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_Publishers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	reader := createUser(t, db, "reader", models.RoleReader)
	acme := createPublisher(t, db, "Acme Daily")
	rival := createPublisher(t, db, "Rival Post")

	has, err := repo.HasPublisher(ctx, reader.ID, acme.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.AddPublisher(ctx, reader.ID, acme.ID))
	require.NoError(t, repo.AddPublisher(ctx, reader.ID, rival.ID))

	has, err = repo.HasPublisher(ctx, reader.ID, acme.ID)
	require.NoError(t, err)
	assert.True(t, has)

	ids, err := repo.PublisherIDs(ctx, reader.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{acme.ID, rival.ID}, ids)

	require.NoError(t, repo.RemovePublisher(ctx, reader.ID, acme.ID))

	has, err = repo.HasPublisher(ctx, reader.ID, acme.ID)
	require.NoError(t, err)
	assert.False(t, has)

	ids, err = repo.PublisherIDs(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{rival.ID}, ids)
}

func TestSubscriptionRepository_Journalists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	reader := createUser(t, db, "reader", models.RoleReader)
	journalist := createUser(t, db, "journo", models.RoleJournalist)

	require.NoError(t, repo.AddJournalist(ctx, reader.ID, journalist.ID))

	has, err := repo.HasJournalist(ctx, reader.ID, journalist.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// The association is directional: the journalist is not subscribed back.
	has, err = repo.HasJournalist(ctx, journalist.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, has)

	ids, err := repo.JournalistIDs(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{journalist.ID}, ids)

	require.NoError(t, repo.RemoveJournalist(ctx, reader.ID, journalist.ID))

	ids, err = repo.JournalistIDs(ctx, reader.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
