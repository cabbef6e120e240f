// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
)

/*
TestGroupByLocation verifies areas keep first-seen order and venues keep input order.
*/
func TestGroupByLocation(t *testing.T) {
	located := []venue.Located{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", NumUpcomingShows: 0},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", NumUpcomingShows: 0},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", NumUpcomingShows: 1},
		{ID: 4, Name: "Lone Star", City: "San Francisco", State: "TX", NumUpcomingShows: 2},
	}

	areas := venue.GroupByLocation(located)

	require.Len(t, areas, 3)
	assert.Equal(t, venue.Area{City: "San Francisco", State: "CA", Venues: []venue.AreaVenue{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0},
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
	}}, areas[0])
	assert.Equal(t, "NY", areas[1].State)
	assert.Equal(t, "TX", areas[2].State, "same city in another state is a separate area")
	assert.Equal(t, 2, areas[2].Venues[0].NumUpcomingShows)
}

func TestGroupByLocation_Empty(t *testing.T) {
	areas := venue.GroupByLocation(nil)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestNewDetail(t *testing.T) {
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	v := &venue.Venue{ID: 3, Profile: catalog.Profile{Name: "Park Square Live Music & Coffee"}}

	detail := venue.NewDetail(v, show.Partition{
		Upcoming: []show.Listing{{ShowID: 5, VenueID: 3, ArtistID: 6, StartTime: start}},
	})

	assert.Equal(t, "Park Square Live Music & Coffee", detail.Name)
	assert.NotNil(t, detail.PastShows)
	assert.Equal(t, 0, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Equal(t, 5, detail.UpcomingShows[0].ShowID)
}
