// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

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

func (service *Service) List(ctx context.Context) ([]catalog.Entry, error) {
	return service.repo.List(ctx)
}

func (service *Service) Recent(ctx context.Context, limit int) ([]catalog.Entry, error) {
	return service.repo.Recent(ctx, limit)
}

// Search matches artist names case-insensitively. An empty term matches every artist.
func (service *Service) Search(ctx context.Context, term string) (catalog.SearchResults, error) {
	term = catalog.NormalizeTerm(term)

	matches, err := service.repo.Search(ctx, term)
	if err != nil {
		return catalog.SearchResults{}, err
	}
	return catalog.NewSearchResults(term, matches), nil
}

func (service *Service) Get(ctx context.Context, id int) (*Artist, error) {
	return service.repo.Get(ctx, id)
}

func (service *Service) Detail(ctx context.Context, id int) (Detail, error) {
	artist, shows, err := service.repo.GetDetail(ctx, id, service.clock())
	if err != nil {
		return Detail{}, err
	}
	return NewDetail(artist, shows), nil
}

func (service *Service) Create(ctx context.Context, artist *Artist) error {
	artist.Normalize()

	validator := &validate.Validator{}
	artist.Validate(validator)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Create(ctx, artist); err != nil {
		return err
	}

	service.logger.Info("artist_created", slog.Int("artist_id", artist.ID), slog.String("name", artist.Name))
	return nil
}

func (service *Service) Update(ctx context.Context, id int, artist *Artist) error {
	artist.ID = id
	artist.Normalize()

	validator := &validate.Validator{}
	artist.Validate(validator)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, artist); err != nil {
		return err
	}

	service.logger.Info("artist_updated", slog.Int("artist_id", artist.ID))
	return nil
}

func (service *Service) Delete(ctx context.Context, id int) (int, error) {
	removed, err := service.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	service.logger.Warn("artist_deleted", slog.Int("artist_id", id), slog.Int("shows_removed", removed))
	return removed, nil
}
