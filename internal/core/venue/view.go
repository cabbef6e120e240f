// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import "github.com/taibuivan/fyyur/internal/core/show"

type areaKey struct {
	city  string
	state string
}

/*
GroupByLocation groups venues by (city, state).

Areas appear in the order their key is first seen; venues keep their input
order inside an area. An empty input yields an empty, non-nil list.
*/
func GroupByLocation(venues []Located) []Area {
	areas := []Area{}
	index := map[areaKey]int{}

	for _, venue := range venues {
		key := areaKey{city: venue.City, state: venue.State}

		position, seen := index[key]
		if !seen {
			position = len(areas)
			index[key] = position
			areas = append(areas, Area{City: venue.City, State: venue.State, Venues: []AreaVenue{}})
		}

		areas[position].Venues = append(areas[position].Venues, AreaVenue{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: venue.NumUpcomingShows,
		})
	}

	return areas
}

// NewDetail assembles a venue page from the venue and its partitioned shows.
func NewDetail(venue *Venue, shows show.Partition) Detail {
	past := shows.Past
	if past == nil {
		past = []show.Listing{}
	}
	upcoming := shows.Upcoming
	if upcoming == nil {
		upcoming = []show.Listing{}
	}

	return Detail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
