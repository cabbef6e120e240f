// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "golang.org/x/text/cases"

// Form field names shared by venues and artists.
const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldPhone              = "phone"
	FieldGenres             = "genres"
	FieldImageLink          = "image_link"
	FieldWebsite            = "website"
	FieldFacebookLink       = "facebook_link"
	FieldSeekingDescription = "seeking_description"
)

// Genres lists the accepted music genres, in display order.
var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock",
	"Rock n Roll",
	"Soul",
	"Other",
}

// States lists the accepted US state codes, in display order.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// genreIndex maps the case-folded genre name to its canonical spelling.
var genreIndex = func() map[string]string {
	folder := cases.Fold()
	index := make(map[string]string, len(Genres))
	for _, genre := range Genres {
		index[folder.String(genre)] = genre
	}
	return index
}()
