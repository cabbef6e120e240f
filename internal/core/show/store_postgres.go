// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// listingSelect joins a show to the display fields of its venue and artist.
// Aliases: s = show, v = venue, a = artist.
var listingSelect = fmt.Sprintf(`
	SELECT s.%s, v.%s, v.%s, v.%s, a.%s, a.%s, a.%s, s.%s
	FROM %s s
	JOIN %s v ON v.%s = s.%s
	JOIN %s a ON a.%s = s.%s
`,
	schema.CoreShow.ID,
	schema.CoreVenue.ID, schema.CoreVenue.Name, schema.CoreVenue.ImageLink,
	schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.ImageLink,
	schema.CoreShow.StartTime,
	schema.CoreShow.Table,
	schema.CoreVenue.Table, schema.CoreVenue.ID, schema.CoreShow.VenueID,
	schema.CoreArtist.Table, schema.CoreArtist.ID, schema.CoreShow.ArtistID,
)

// relationColumn returns the show column that links to the relation's entity.
func relationColumn(relation Relation) (string, error) {
	switch relation {
	case ByVenue:
		return schema.CoreShow.VenueID, nil
	case ByArtist:
		return schema.CoreShow.ArtistID, nil
	default:
		return "", fmt.Errorf("show: unknown relation %s", relation)
	}
}

/*
PartitionFor lists the past and upcoming shows of one venue or artist.

Description: Both halves are filtered by the database (start_time < now and
start_time >= now). Pass a transaction as q to read both halves, and the entity
itself, from a single snapshot.

Parameters:
  - ctx: context.Context
  - q: postgres.Querier (pool or transaction)
  - relation: Relation (ByVenue or ByArtist)
  - id: int (venue or artist id)
  - now: time.Time (partition boundary)

Returns:
  - Partition: Past newest first, Upcoming soonest first; both non-nil
  - error: Query failures
*/
func PartitionFor(ctx context.Context, q postgres.Querier, relation Relation, id int, now time.Time) (Partition, error) {
	column, err := relationColumn(relation)
	if err != nil {
		return Partition{}, err
	}

	pastQuery := listingSelect + fmt.Sprintf(`
		WHERE s.%s = $1 AND s.%s < $2
		ORDER BY s.%s DESC, s.%s DESC
	`, column, schema.CoreShow.StartTime, schema.CoreShow.StartTime, schema.CoreShow.ID)

	upcomingQuery := listingSelect + fmt.Sprintf(`
		WHERE s.%s = $1 AND s.%s >= $2
		ORDER BY s.%s ASC, s.%s ASC
	`, column, schema.CoreShow.StartTime, schema.CoreShow.StartTime, schema.CoreShow.ID)

	past, err := queryListings(ctx, q, pastQuery, id, now)
	if err != nil {
		return Partition{}, dberr.Wrap(err, "list_past_shows")
	}

	upcoming, err := queryListings(ctx, q, upcomingQuery, id, now)
	if err != nil {
		return Partition{}, dberr.Wrap(err, "list_upcoming_shows")
	}

	return Partition{Past: past, Upcoming: upcoming}, nil
}

func (repository *PostgresRepository) Upcoming(ctx context.Context, now time.Time) ([]Listing, error) {
	query := listingSelect + fmt.Sprintf(`
		WHERE s.%s >= $1
		ORDER BY s.%s ASC, s.%s ASC
	`, schema.CoreShow.StartTime, schema.CoreShow.StartTime, schema.CoreShow.ID)

	listings, err := queryListings(ctx, repository.db, query, now)
	return listings, dberr.Wrap(err, "list_upcoming_shows")
}

func (repository *PostgresRepository) UpcomingFor(ctx context.Context, relation Relation, ids []int, now time.Time) (map[int][]Listing, error) {
	grouped := make(map[int][]Listing, len(ids))
	if len(ids) == 0 {
		return grouped, nil
	}

	column, err := relationColumn(relation)
	if err != nil {
		return nil, err
	}

	query := listingSelect + fmt.Sprintf(`
		WHERE s.%s = ANY($1) AND s.%s >= $2
		ORDER BY s.%s ASC, s.%s ASC
	`, column, schema.CoreShow.StartTime, schema.CoreShow.StartTime, schema.CoreShow.ID)

	listings, err := queryListings(ctx, repository.db, query, ids, now)
	if err != nil {
		return nil, dberr.Wrap(err, "list_upcoming_shows_for")
	}

	for _, listing := range listings {
		key := listing.VenueID
		if relation == ByArtist {
			key = listing.ArtistID
		}
		grouped[key] = append(grouped[key], listing)
	}

	return grouped, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, show *Show) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.CoreShow.Table, schema.CoreShow.ArtistID, schema.CoreShow.VenueID,
		schema.CoreShow.StartTime, schema.CoreShow.CreatedAt,
		schema.CoreShow.ID, schema.CoreShow.CreatedAt,
	)

	err := postgres.WithTx(ctx, repository.db, pgx.TxOptions{}, "create_show", func(transaction pgx.Tx) error {
		return transaction.QueryRow(ctx, query, show.ArtistID, show.VenueID, show.StartTime).Scan(&show.ID, &show.CreatedAt)
	})

	return dberr.WrapResource(err, "Show", "create_show")
}

// queryListings runs a listingSelect query and scans every row. The result is never nil.
func queryListings(ctx context.Context, q postgres.Querier, query string, args ...any) ([]Listing, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []Listing{}
	for rows.Next() {
		var listing Listing
		if err := rows.Scan(
			&listing.ShowID,
			&listing.VenueID, &listing.VenueName, &listing.VenueImageLink,
			&listing.ArtistID, &listing.ArtistName, &listing.ArtistImageLink,
			&listing.StartTime,
		); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, rows.Err()
}
