// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package artist manages the performers that play shows at venues.
package artist

import (
	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// Artist is a performer.
type Artist struct {
	ID int `json:"id"`
	catalog.Profile
	SeekingVenue bool `json:"seeking_venue"`
}

// Detail is an artist with its shows split around "now".
type Detail struct {
	Artist
	PastShows          []show.Listing `json:"past_shows"`
	UpcomingShows      []show.Listing `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

const FieldSeekingVenue = "seeking_venue"

// Normalize cleans the artist in place before validation.
func (a *Artist) Normalize() {
	a.Profile.Normalize()
}

// Validate appends the artist rules to validator.
func (a *Artist) Validate(validator *validate.Validator) {
	a.Profile.Validate(validator)
}

// NewDetail assembles an artist page from the artist and its partitioned shows.
func NewDetail(artist *Artist, shows show.Partition) Detail {
	past := shows.Past
	if past == nil {
		past = []show.Listing{}
	}
	upcoming := shows.Upcoming
	if upcoming == nil {
		upcoming = []show.Listing{}
	}

	return Detail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}
