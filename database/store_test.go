package database_test

import (
	"context"
	"testing"
	"time"

	"portfolio/database"
	"portfolio/database/databasetest"
	"portfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAssignsIdentity(t *testing.T) {
	store := database.NewStore[models.Review](databasetest.New(t))
	ctx := context.Background()

	first := models.Review{Name: "A", Role: "CTO", Company: "X", Rating: 5, Review: "Great"}
	second := models.Review{Name: "B", Role: "CEO", Company: "Y", Rating: 4, Review: "Good"}
	require.NoError(t, store.Create(ctx, &first))
	require.NoError(t, store.Create(ctx, &second))

	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, 5, first.Rating)
}

func TestStoreListNewestFirst(t *testing.T) {
	store := database.NewStore[models.Booking](databasetest.New(t))
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	// inserted out of order on purpose
	offsets := []int{2, 0, 3, 1}
	for _, off := range offsets {
		b := models.Booking{
			CreatedAt:          base.Add(time.Duration(off) * time.Hour),
			Name:               "N",
			Email:              "n@example.com",
			Phone:              "+1 555 0100",
			ProjectType:        "web-app",
			ProjectDescription: "desc",
			Timeline:           "asap",
			PreferredContact:   "email",
		}
		require.NoError(t, store.Create(ctx, &b))
	}

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(offsets))
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt), "index %d not newer than %d", i-1, i)
	}
}

func TestStoreListEmpty(t *testing.T) {
	store := database.NewStore[models.Review](databasetest.New(t))

	got, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStoreDelete(t *testing.T) {
	store := database.NewStore[models.Review](databasetest.New(t))
	ctx := context.Background()

	r := models.Review{Name: "A", Role: "CTO", Company: "X", Rating: 3, Review: "Ok"}
	require.NoError(t, store.Create(ctx, &r))

	require.NoError(t, store.Delete(ctx, r.ID))

	got, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, store.Delete(ctx, r.ID), database.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, 9999), database.ErrNotFound)
}

func TestRatingCheckConstraint(t *testing.T) {
	store := database.NewStore[models.Review](databasetest.New(t))

	bad := models.Review{Name: "A", Role: "CTO", Company: "X", Rating: 9, Review: "Too good"}
	assert.Error(t, store.Create(context.Background(), &bad))
}
