// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package venue manages the places that host shows.

A venue page shows the venue profile with its shows split into past and
upcoming. The venue list groups every venue by (city, state) together with its
number of upcoming shows, computed by the database.
*/
package venue

import (
	"strings"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// Venue is a place that hosts shows.
type Venue struct {
	ID int `json:"id"`
	catalog.Profile
	Address       string `json:"address"`
	SeekingTalent bool   `json:"seeking_talent"`
}

// Located is one row of the grouped venue list.
type Located struct {
	ID               int
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

// Area is every venue sharing one (city, state).
type Area struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []AreaVenue `json:"venues"`
}

// AreaVenue is a venue entry inside an [Area].
type AreaVenue struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Detail is a venue with its shows split around "now".
type Detail struct {
	Venue
	PastShows          []show.Listing `json:"past_shows"`
	UpcomingShows      []show.Listing `json:"upcoming_shows"`
	PastShowsCount     int            `json:"past_shows_count"`
	UpcomingShowsCount int            `json:"upcoming_shows_count"`
}

// Page is the venue page: the detail plus an optional artist search for booking.
type Page struct {
	Detail
	ArtistSearch *catalog.SearchResults `json:"artist_search,omitempty"`
}

const MaxAddressLen = 120

const (
	FieldAddress       = "address"
	FieldSeekingTalent = "seeking_talent"
)

// Normalize cleans the venue in place before validation.
func (v *Venue) Normalize() {
	v.Profile.Normalize()
	v.Address = strings.TrimSpace(v.Address)
}

// Validate appends the venue rules to validator.
func (v *Venue) Validate(validator *validate.Validator) {
	v.Profile.Validate(validator)
	validator.Required(FieldAddress, v.Address).MaxLen(FieldAddress, v.Address, MaxAddressLen)
}
