// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"
	"time"
)

// Repository defines persistence for shows.
type Repository interface {
	// Create inserts a show inside its own transaction and fills ID and CreatedAt.
	Create(ctx context.Context, show *Show) error

	// Upcoming lists every show with start_time >= now, soonest first.
	Upcoming(ctx context.Context, now time.Time) ([]Listing, error)

	// UpcomingFor lists the upcoming shows of many venues or artists at once,
	// keyed by venue or artist id. Ids without shows are absent from the map.
	UpcomingFor(ctx context.Context, relation Relation, ids []int, now time.Time) (map[int][]Listing, error)
}
