// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/migration"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

// testPool connects to FYYUR_TEST_DATABASE_URL and migrates it, or skips.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("FYYUR_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("FYYUR_TEST_DATABASE_URL not set")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migration.RunUp(dsn, "../../../data/migrations", false, logger))

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

/*
TestPostgresRepository_Lifecycle runs create, detail, search, and cascading
delete against a real database.
*/
func TestPostgresRepository_Lifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	suffix := uuid.NewString()[:8]

	venues := venue.NewPostgresRepository(pool)
	artists := artist.NewPostgresRepository(pool)
	shows := show.NewPostgresRepository(pool)

	hall := &venue.Venue{Profile: catalog.Profile{
		Name: "100% Hall " + suffix, City: "San Francisco", State: "CA",
		Phone: "415-000-0000", Genres: []string{"Jazz"},
	}, Address: "1 Market St"}
	require.NoError(t, venues.Create(ctx, hall))
	require.NotZero(t, hall.ID)

	band := &artist.Artist{Profile: catalog.Profile{
		Name: "Band " + suffix, City: "Oakland", State: "CA",
		Phone: "510-000-0000", Genres: []string{"Jazz"},
	}}
	require.NoError(t, artists.Create(ctx, band))

	now := time.Now().UTC().Truncate(time.Second)
	for _, start := range []time.Time{now.Add(-48 * time.Hour), now.Add(48 * time.Hour)} {
		require.NoError(t, shows.Create(ctx, &show.Show{ArtistID: band.ID, VenueID: hall.ID, StartTime: start}))
	}

	located, err := venues.ListLocated(ctx, now)
	require.NoError(t, err)
	var found bool
	for _, entry := range located {
		if entry.ID == hall.ID {
			found = true
			assert.Equal(t, 1, entry.NumUpcomingShows)
		}
	}
	assert.True(t, found)

	_, partition, err := venues.GetDetail(ctx, hall.ID, now)
	require.NoError(t, err)
	assert.Len(t, partition.Past, 1)
	assert.Len(t, partition.Upcoming, 1)
	assert.Equal(t, band.Name, partition.Upcoming[0].ArtistName)

	matches, err := venues.Search(ctx, "100% hall "+suffix)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, hall.ID, matches[0].ID)

	removed, err := venues.Delete(ctx, hall.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = venues.Get(ctx, hall.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, partition, err = artists.GetDetail(ctx, band.ID, now)
	require.NoError(t, err)
	assert.Empty(t, partition.Past)
	assert.Empty(t, partition.Upcoming)

	_, err = artists.Delete(ctx, band.ID)
	require.NoError(t, err)
}
