// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"context"
	"log/slog"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
)

// EntrySource is the read side shared by the venue and artist services.
type EntrySource interface {
	Recent(ctx context.Context, limit int) ([]catalog.Entry, error)
	Search(ctx context.Context, term string) (catalog.SearchResults, error)
}

// ShowSource groups upcoming shows by venue or artist.
type ShowSource interface {
	UpcomingFor(ctx context.Context, relation show.Relation, ids []int) (map[int][]show.Listing, error)
}

type Service struct {
	venues    EntrySource
	artists   EntrySource
	shows     ShowSource
	homeLimit int
	logger    *slog.Logger
}

func NewService(venues, artists EntrySource, shows ShowSource, homeLimit int, logger *slog.Logger) *Service {
	return &Service{
		venues:    venues,
		artists:   artists,
		shows:     shows,
		homeLimit: homeLimit,
		logger:    logger,
	}
}

func (service *Service) Home(ctx context.Context) (Home, error) {
	venues, err := service.venues.Recent(ctx, service.homeLimit)
	if err != nil {
		return Home{}, err
	}

	artists, err := service.artists.Recent(ctx, service.homeLimit)
	if err != nil {
		return Home{}, err
	}

	return Home{Venues: venues, Artists: artists}, nil
}

/*
SearchShows finds venues and artists whose name contains term and attaches
their upcoming shows.

Description: Each side needs two queries in total (the name match and one
grouped show lookup), regardless of how many entries match.
*/
func (service *Service) SearchShows(ctx context.Context, term string) (ShowSearch, error) {
	venues, err := service.venues.Search(ctx, term)
	if err != nil {
		return ShowSearch{}, err
	}

	artists, err := service.artists.Search(ctx, term)
	if err != nil {
		return ShowSearch{}, err
	}

	byVenue, err := service.shows.UpcomingFor(ctx, show.ByVenue, ids(venues.Data))
	if err != nil {
		return ShowSearch{}, err
	}

	byArtist, err := service.shows.UpcomingFor(ctx, show.ByArtist, ids(artists.Data))
	if err != nil {
		return ShowSearch{}, err
	}

	result := NewShowSearch(venues.SearchTerm, venues.Data, artists.Data, Upcoming{ByVenue: byVenue, ByArtist: byArtist})

	service.logger.Debug("show_search",
		slog.String("term", result.SearchTerm),
		slog.Int("venues", len(result.Venues)),
		slog.Int("artists", len(result.Artists)),
	)
	return result, nil
}
