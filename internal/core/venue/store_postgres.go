// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

const resource = "Venue"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectVenue = fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
	FROM %s
	WHERE %s = $1
`,
	schema.CoreVenue.ID, schema.CoreVenue.Name, schema.CoreVenue.City, schema.CoreVenue.State,
	schema.CoreVenue.Address, schema.CoreVenue.Phone, schema.CoreVenue.Genres, schema.CoreVenue.ImageLink,
	schema.CoreVenue.Website, schema.CoreVenue.FacebookLink, schema.CoreVenue.SeekingTalent,
	schema.CoreVenue.SeekingDescription, schema.CoreVenue.CreatedAt, schema.CoreVenue.UpdatedAt,
	schema.CoreVenue.Table, schema.CoreVenue.ID,
)

func scanVenue(row pgx.Row) (*Venue, error) {
	v := &Venue{}
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres, &v.ImageLink,
		&v.Website, &v.FacebookLink, &v.SeekingTalent, &v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (repository *PostgresRepository) ListLocated(ctx context.Context, now time.Time) ([]Located, error) {
	query := fmt.Sprintf(`
		SELECT v.%s, v.%s, v.%s, v.%s, COUNT(s.%s) FILTER (WHERE s.%s >= $1)
		FROM %s v
		LEFT JOIN %s s ON s.%s = v.%s
		GROUP BY v.%s
		ORDER BY v.%s, v.%s, v.%s, v.%s
	`,
		schema.CoreVenue.ID, schema.CoreVenue.Name, schema.CoreVenue.City, schema.CoreVenue.State,
		schema.CoreShow.ID, schema.CoreShow.StartTime,
		schema.CoreVenue.Table,
		schema.CoreShow.Table, schema.CoreShow.VenueID, schema.CoreVenue.ID,
		schema.CoreVenue.ID,
		schema.CoreVenue.State, schema.CoreVenue.City, schema.CoreVenue.Name, schema.CoreVenue.ID,
	)

	rows, err := repository.db.Query(ctx, query, now)
	if err != nil {
		return nil, dberr.Wrap(err, "list_venues")
	}
	defer rows.Close()

	venues := []Located{}
	for rows.Next() {
		var located Located
		if err := rows.Scan(&located.ID, &located.Name, &located.City, &located.State, &located.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue")
		}
		venues = append(venues, located)
	}

	return venues, dberr.Wrap(rows.Err(), "list_venues")
}

func (repository *PostgresRepository) Recent(ctx context.Context, limit int) ([]catalog.Entry, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s DESC LIMIT $1`,
		schema.CoreVenue.ID, schema.CoreVenue.Name, schema.CoreVenue.Table, schema.CoreVenue.ID,
	)

	entries, err := catalog.QueryEntries(ctx, repository.db, query, limit)
	return entries, dberr.Wrap(err, "recent_venues")
}

func (repository *PostgresRepository) Search(ctx context.Context, term string) ([]catalog.Entry, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s ILIKE $1 ESCAPE '\' ORDER BY %s, %s`,
		schema.CoreVenue.ID, schema.CoreVenue.Name, schema.CoreVenue.Table,
		schema.CoreVenue.Name, schema.CoreVenue.Name, schema.CoreVenue.ID,
	)

	entries, err := catalog.QueryEntries(ctx, repository.db, query, catalog.LikePattern(term))
	return entries, dberr.Wrap(err, "search_venues")
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Venue, error) {
	v, err := scanVenue(repository.db.QueryRow(ctx, selectVenue, id))
	return v, dberr.WrapResource(err, resource, "get_venue")
}

func (repository *PostgresRepository) GetDetail(ctx context.Context, id int, now time.Time) (*Venue, show.Partition, error) {
	var (
		v      *Venue
		shows  show.Partition
		getErr error
	)

	err := postgres.WithTx(ctx, repository.db, postgres.ReadSnapshot, "get_venue_detail", func(transaction pgx.Tx) error {
		v, getErr = scanVenue(transaction.QueryRow(ctx, selectVenue, id))
		if getErr != nil {
			return getErr
		}

		shows, getErr = show.PartitionFor(ctx, transaction, show.ByVenue, id, now)
		return getErr
	})
	if err != nil {
		return nil, show.Partition{}, dberr.WrapResource(err, resource, "get_venue_detail")
	}

	return v, shows, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, v *Venue) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreVenue.Table,
		schema.CoreVenue.Name, schema.CoreVenue.City, schema.CoreVenue.State, schema.CoreVenue.Address,
		schema.CoreVenue.Phone, schema.CoreVenue.Genres, schema.CoreVenue.ImageLink, schema.CoreVenue.Website,
		schema.CoreVenue.FacebookLink, schema.CoreVenue.SeekingTalent, schema.CoreVenue.SeekingDescription,
		schema.CoreVenue.CreatedAt, schema.CoreVenue.UpdatedAt,
		schema.CoreVenue.ID, schema.CoreVenue.CreatedAt, schema.CoreVenue.UpdatedAt,
	)

	err := postgres.WithTx(ctx, repository.db, pgx.TxOptions{}, "create_venue", func(transaction pgx.Tx) error {
		return transaction.QueryRow(ctx, query,
			v.Name, v.City, v.State, v.Address, v.Phone, v.Genres, v.ImageLink, v.Website,
			v.FacebookLink, v.SeekingTalent, v.SeekingDescription,
		).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	})

	return dberr.WrapResource(err, resource, "create_venue")
}

// Update rewrites the venue row in place; the id and its shows are kept.
func (repository *PostgresRepository) Update(ctx context.Context, v *Venue) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
			%s = $8, %s = $9, %s = $10, %s = $11, %s = $12, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CoreVenue.Table,
		schema.CoreVenue.Name, schema.CoreVenue.City, schema.CoreVenue.State, schema.CoreVenue.Address,
		schema.CoreVenue.Phone, schema.CoreVenue.Genres,
		schema.CoreVenue.ImageLink, schema.CoreVenue.Website, schema.CoreVenue.FacebookLink,
		schema.CoreVenue.SeekingTalent, schema.CoreVenue.SeekingDescription, schema.CoreVenue.UpdatedAt,
		schema.CoreVenue.ID,
		schema.CoreVenue.CreatedAt, schema.CoreVenue.UpdatedAt,
	)

	err := postgres.WithTx(ctx, repository.db, pgx.TxOptions{}, "update_venue", func(transaction pgx.Tx) error {
		return transaction.QueryRow(ctx, query,
			v.ID, v.Name, v.City, v.State, v.Address, v.Phone, v.Genres, v.ImageLink, v.Website,
			v.FacebookLink, v.SeekingTalent, v.SeekingDescription,
		).Scan(&v.CreatedAt, &v.UpdatedAt)
	})

	return dberr.WrapResource(err, resource, "update_venue")
}

// Delete removes the venue's shows first, then the venue, in one transaction.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) (int, error) {
	deleteShows := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreShow.Table, schema.CoreShow.VenueID)
	deleteVenue := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreVenue.Table, schema.CoreVenue.ID)

	var removed int
	err := postgres.WithTx(ctx, repository.db, pgx.TxOptions{}, "delete_venue", func(transaction pgx.Tx) error {
		tag, err := transaction.Exec(ctx, deleteShows, id)
		if err != nil {
			return err
		}
		removed = int(tag.RowsAffected())

		tag, err = transaction.Exec(ctx, deleteVenue, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resource)
		}
		return nil
	})
	if err != nil {
		return 0, dberr.WrapResource(err, resource, "delete_venue")
	}

	return removed, nil
}
