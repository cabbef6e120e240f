// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog holds what venues and artists have in common: the public
profile fields, the {id, name} directory entry, and free-text search.

# Search Semantics

  - Case-insensitive substring match on the name (ILIKE).
  - The term is trimmed and NFC-normalized; LIKE metacharacters match literally.
  - An empty term matches every row.
*/
package catalog

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

// # Directory Entries

// Entry is the minimal reference to a venue or artist used in lists and search results.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SearchResults is the view of one search request.
type SearchResults struct {
	SearchTerm string  `json:"search_term"`
	Count      int     `json:"count"`
	Data       []Entry `json:"data"`
}

// NewSearchResults wraps matches with their count, preserving order.
func NewSearchResults(term string, matches []Entry) SearchResults {
	data := make([]Entry, len(matches))
	copy(data, matches)

	return SearchResults{
		SearchTerm: term,
		Count:      len(data),
		Data:       data,
	}
}

// # Search Terms

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NormalizeTerm trims and NFC-normalizes a user supplied search term.
func NormalizeTerm(term string) string {
	return norm.NFC.String(strings.TrimSpace(term))
}

// LikePattern builds a "%term%" ILIKE pattern in which the term matches literally.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// # Profiles

// Column limits shared by the venue and artist tables.
const (
	MaxNameLen        = 120
	MaxCityLen        = 120
	MaxStateLen       = 20
	MaxLinkLen        = 500
	MaxFacebookLen    = 120
	MaxDescriptionLen = 500
)

// Profile is the public face shared by venues and artists.
type Profile struct {
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          *string   `json:"image_link"`
	Website            *string   `json:"website"`
	FacebookLink       *string   `json:"facebook_link"`
	SeekingDescription *string   `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Normalize cleans the profile in place: trims text, NFC-normalizes the name,
// canonicalizes genres, blanks empty optional links, and guarantees a non-nil genre list.
func (p *Profile) Normalize() {
	p.Name = norm.NFC.String(strings.TrimSpace(p.Name))
	p.City = strings.TrimSpace(p.City)
	p.State = strings.ToUpper(strings.TrimSpace(p.State))
	p.Phone = strings.TrimSpace(p.Phone)
	p.Genres = CanonicalGenres(p.Genres)
	p.ImageLink = pointer.NonBlank(p.ImageLink)
	p.Website = pointer.NonBlank(p.Website)
	p.FacebookLink = pointer.NonBlank(p.FacebookLink)
	p.SeekingDescription = pointer.NonBlank(p.SeekingDescription)
}

// Validate appends the profile rules to validator.
func (p *Profile) Validate(validator *validate.Validator) {
	validator.
		Required(FieldName, p.Name).MaxLen(FieldName, p.Name, MaxNameLen).
		Required(FieldCity, p.City).MaxLen(FieldCity, p.City, MaxCityLen).
		Required(FieldState, p.State).
		Required(FieldPhone, p.Phone)

	if p.State != "" {
		validator.OneOf(FieldState, p.State, States...)
	}
	if p.Phone != "" {
		validator.Phone(FieldPhone, p.Phone)
	}

	validator.Subset(FieldGenres, p.Genres, Genres)

	if p.ImageLink != nil {
		validator.URL(FieldImageLink, *p.ImageLink).MaxLen(FieldImageLink, *p.ImageLink, MaxLinkLen)
	}
	if p.Website != nil {
		validator.URL(FieldWebsite, *p.Website).MaxLen(FieldWebsite, *p.Website, MaxLinkLen)
	}
	if p.FacebookLink != nil {
		validator.URL(FieldFacebookLink, *p.FacebookLink).MaxLen(FieldFacebookLink, *p.FacebookLink, MaxFacebookLen)
	}
	if p.SeekingDescription != nil {
		validator.MaxLen(FieldSeekingDescription, *p.SeekingDescription, MaxDescriptionLen)
	}
}

// CanonicalGenres maps each value case-insensitively onto the canonical genre
// spelling, dropping blanks and duplicates. Unknown values are kept verbatim so
// validation can report them. The result is never nil.
func CanonicalGenres(values []string) []string {
	folder := cases.Fold()
	result := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		key := folder.String(value)
		if canonical, ok := genreIndex[key]; ok {
			value = canonical
		}

		if seen[value] {
			continue
		}
		seen[value] = true
		result = append(result, value)
	}

	return result
}
