// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import (
	"context"
	"time"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
)

// Repository defines persistence for venues.
type Repository interface {
	// ListLocated returns every venue with its upcoming show count at now,
	// ordered by state, city, name.
	ListLocated(ctx context.Context, now time.Time) ([]Located, error)
	Recent(ctx context.Context, limit int) ([]catalog.Entry, error)
	Search(ctx context.Context, term string) ([]catalog.Entry, error)
	Get(ctx context.Context, id int) (*Venue, error)

	// GetDetail reads the venue and both show partitions from one snapshot.
	GetDetail(ctx context.Context, id int, now time.Time) (*Venue, show.Partition, error)

	Create(ctx context.Context, venue *Venue) error
	Update(ctx context.Context, venue *Venue) error

	// Delete removes the venue and its shows, returning how many shows went with it.
	Delete(ctx context.Context, id int) (int, error)
}
