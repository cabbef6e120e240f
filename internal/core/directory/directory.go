// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package directory serves the pages that span venues, artists, and shows:
the home page and the show search.

The show search matches the term against venue and artist names at once and
lists, for every hit, its upcoming shows.
*/
package directory

import (
	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/pkg/slice"
)

// Home lists the most recently added venues and artists, newest first.
type Home struct {
	Venues  []catalog.Entry `json:"venues"`
	Artists []catalog.Entry `json:"artists"`
}

// Hit is a venue or artist matched by the show search.
type Hit struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	NumUpcomingShows int            `json:"num_upcoming_shows"`
	UpcomingShows    []show.Listing `json:"upcoming_shows"`
}

// ShowSearch is the combined result of one show search.
type ShowSearch struct {
	SearchTerm string `json:"search_term"`
	Count      int    `json:"count"`
	Venues     []Hit  `json:"venues"`
	Artists    []Hit  `json:"artists"`
}

// Upcoming holds upcoming shows keyed by venue id and by artist id.
type Upcoming struct {
	ByVenue  map[int][]show.Listing
	ByArtist map[int][]show.Listing
}

// NewShowSearch joins the matched venues and artists with their upcoming shows.
// Match order is preserved and every slice is non-nil.
func NewShowSearch(term string, venues, artists []catalog.Entry, upcoming Upcoming) ShowSearch {
	result := ShowSearch{
		SearchTerm: term,
		Venues:     hits(venues, upcoming.ByVenue),
		Artists:    hits(artists, upcoming.ByArtist),
	}
	result.Count = len(result.Venues) + len(result.Artists)
	return result
}

func hits(entries []catalog.Entry, upcoming map[int][]show.Listing) []Hit {
	result := make([]Hit, 0, len(entries))
	for _, entry := range entries {
		shows := upcoming[entry.ID]
		if shows == nil {
			shows = []show.Listing{}
		}
		result = append(result, Hit{
			ID:               entry.ID,
			Name:             entry.Name,
			NumUpcomingShows: len(shows),
			UpcomingShows:    shows,
		})
	}
	return result
}

func ids(entries []catalog.Entry) []int {
	return slice.Map(entries, func(entry catalog.Entry) int { return entry.ID })
}
