// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"context"
	"time"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
)

type Repository interface {
	// List returns every artist ordered by name.
	List(ctx context.Context) ([]catalog.Entry, error)
	Recent(ctx context.Context, limit int) ([]catalog.Entry, error)
	Search(ctx context.Context, term string) ([]catalog.Entry, error)
	Get(ctx context.Context, id int) (*Artist, error)
	GetDetail(ctx context.Context, id int, now time.Time) (*Artist, show.Partition, error)
	Create(ctx context.Context, artist *Artist) error
	Update(ctx context.Context, artist *Artist) error

	// Delete removes the artist and its shows, returning how many shows went with it.
	Delete(ctx context.Context, id int) (int, error)
}
