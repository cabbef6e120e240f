// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package show manages performances: one artist playing one venue at a start time.

# Partitioning

A show's past/upcoming state is never stored; it is computed against "now" at
query time, and always in the database:

  - Past:     start_time <  now
  - Upcoming: start_time >= now

A show starting exactly at "now" is upcoming, so the two partitions together
cover every show exactly once.
*/
package show

import (
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/fyyur/pkg/slice"
)

// Show is a stored performance.
type Show struct {
	ID        int       `json:"id"`
	ArtistID  int       `json:"artist_id"`
	VenueID   int       `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

// Listing is a show joined with the display fields of its venue and artist.
type Listing struct {
	ShowID          int       `json:"show_id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  *string   `json:"venue_image_link"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink *string   `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Partition splits the shows of one venue or artist around "now".
type Partition struct {
	Past     []Listing
	Upcoming []Listing
}

// IsUpcoming reports whether a show starting at start is upcoming at now.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// Split partitions listings around now in memory, keeping their order.
// Stores partition in SQL; this serves callers that already hold the rows.
func Split(listings []Listing, now time.Time) Partition {
	upcoming, past := slice.Partition(listings, func(listing Listing) bool {
		return IsUpcoming(listing.StartTime, now)
	})
	return Partition{Past: past, Upcoming: upcoming}
}

// # Relations

// Relation names which side of a show a lookup goes through.
type Relation int

const (
	// ByVenue selects shows hosted by a venue.
	ByVenue Relation = iota + 1
	// ByArtist selects shows performed by an artist.
	ByArtist
)

func (relation Relation) String() string {
	switch relation {
	case ByVenue:
		return "venue"
	case ByArtist:
		return "artist"
	default:
		return fmt.Sprintf("relation(%d)", int(relation))
	}
}

// # Start Time Parsing

// startTimeLayouts are tried in order; the last three carry no zone and are
// interpreted in the caller's location.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseStartTime accepts RFC 3339 as well as the browser's datetime-local format.
func ParseStartTime(raw string, location *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("show: empty start time")
	}

	for index, layout := range startTimeLayouts {
		var (
			parsed time.Time
			err    error
		)
		if index == 0 {
			parsed, err = time.Parse(layout, raw)
		} else {
			parsed, err = time.ParseInLocation(layout, raw, location)
		}
		if err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, fmt.Errorf("show: unrecognized start time %q", raw)
}

// Form field names.
const (
	FieldArtistID  = "artist_id"
	FieldVenueID   = "venue_id"
	FieldStartTime = "start_time"
)
