// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/platform/validate"
)

type Service struct {
	repo   Repository
	clock  func() time.Time
	logger *slog.Logger
}

// NewService builds a show service. clock supplies "now" for every partition.
func NewService(repo Repository, clock func() time.Time, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// Upcoming lists every show starting at or after now, soonest first.
func (service *Service) Upcoming(ctx context.Context) ([]Listing, error) {
	return service.repo.Upcoming(ctx, service.clock())
}

// UpcomingFor groups the upcoming shows of several venues or artists by their id.
func (service *Service) UpcomingFor(ctx context.Context, relation Relation, ids []int) (map[int][]Listing, error) {
	return service.repo.UpcomingFor(ctx, relation, ids, service.clock())
}

/*
Create validates and stores a new show.

Description: A show in the past is accepted; it simply lands in the "past"
partition. Missing artists or venues are reported by the database as a
validation error on artist_id or venue_id.

Returns:
  - error: VALIDATION_ERROR or a persistence error
*/
func (service *Service) Create(ctx context.Context, show *Show) error {
	validator := &validate.Validator{}
	validator.
		ID(FieldArtistID, show.ArtistID).
		ID(FieldVenueID, show.VenueID).
		Custom(FieldStartTime, show.StartTime.IsZero(), "This field is required")

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, show); err != nil {
		return err
	}

	service.logger.Info("show_created",
		slog.Int("show_id", show.ID),
		slog.Int("artist_id", show.ArtistID),
		slog.Int("venue_id", show.VenueID),
	)
	return nil
}
