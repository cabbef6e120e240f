// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

type Service struct {
	repo   Repository
	clock  func() time.Time
	logger *slog.Logger
}

func NewService(repo Repository, clock func() time.Time, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

// ListByArea returns every venue grouped by (city, state) with its upcoming show count.
func (service *Service) ListByArea(ctx context.Context) ([]Area, error) {
	located, err := service.repo.ListLocated(ctx, service.clock())
	if err != nil {
		return nil, err
	}
	return GroupByLocation(located), nil
}

func (service *Service) Recent(ctx context.Context, limit int) ([]catalog.Entry, error) {
	return service.repo.Recent(ctx, limit)
}

// Search matches venue names case-insensitively. An empty term matches every venue.
func (service *Service) Search(ctx context.Context, term string) (catalog.SearchResults, error) {
	term = catalog.NormalizeTerm(term)

	matches, err := service.repo.Search(ctx, term)
	if err != nil {
		return catalog.SearchResults{}, err
	}
	return catalog.NewSearchResults(term, matches), nil
}

func (service *Service) Get(ctx context.Context, id int) (*Venue, error) {
	return service.repo.Get(ctx, id)
}

// Detail returns the venue with its past and upcoming shows as of now.
func (service *Service) Detail(ctx context.Context, id int) (Detail, error) {
	venue, shows, err := service.repo.GetDetail(ctx, id, service.clock())
	if err != nil {
		return Detail{}, err
	}
	return NewDetail(venue, shows), nil
}

func (service *Service) Create(ctx context.Context, venue *Venue) error {
	venue.Normalize()

	validator := &validate.Validator{}
	venue.Validate(validator)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, venue); err != nil {
		return err
	}

	service.logger.Info("venue_created", slog.Int("venue_id", venue.ID), slog.String("name", venue.Name))
	return nil
}

func (service *Service) Update(ctx context.Context, id int, venue *Venue) error {
	venue.ID = id
	venue.Normalize()

	validator := &validate.Validator{}
	venue.Validate(validator)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, venue); err != nil {
		return err
	}

	service.logger.Info("venue_updated", slog.Int("venue_id", venue.ID))
	return nil
}

// Delete removes the venue together with its shows and reports how many shows were removed.
func (service *Service) Delete(ctx context.Context, id int) (int, error) {
	removed, err := service.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	service.logger.Warn("venue_deleted", slog.Int("venue_id", id), slog.Int("shows_removed", removed))
	return removed, nil
}
