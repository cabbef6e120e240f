// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

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

const resource = "Artist"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectArtist = fmt.Sprintf(`
	SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
	FROM %s
	WHERE %s = $1
`,
	schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.City, schema.CoreArtist.State,
	schema.CoreArtist.Phone, schema.CoreArtist.Genres, schema.CoreArtist.ImageLink, schema.CoreArtist.Website,
	schema.CoreArtist.FacebookLink, schema.CoreArtist.SeekingVenue, schema.CoreArtist.SeekingDescription,
	schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
	schema.CoreArtist.Table, schema.CoreArtist.ID,
)

func scanArtist(row pgx.Row) (*Artist, error) {
	a := &Artist{}
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres, &a.ImageLink, &a.Website,
		&a.FacebookLink, &a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (repository *PostgresRepository) List(ctx context.Context) ([]catalog.Entry, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s, %s`,
		schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.Table, schema.CoreArtist.Name, schema.CoreArtist.ID,
	)

	entries, err := catalog.QueryEntries(ctx, repository.db, query)
	return entries, dberr.Wrap(err, "list_artists")
}

func (repository *PostgresRepository) Recent(ctx context.Context, limit int) ([]catalog.Entry, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s DESC LIMIT $1`,
		schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.Table, schema.CoreArtist.ID,
	)

	entries, err := catalog.QueryEntries(ctx, repository.db, query, limit)
	return entries, dberr.Wrap(err, "recent_artists")
}

func (repository *PostgresRepository) Search(ctx context.Context, term string) ([]catalog.Entry, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s ILIKE $1 ESCAPE '\' ORDER BY %s, %s`,
		schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.Table,
		schema.CoreArtist.Name, schema.CoreArtist.Name, schema.CoreArtist.ID,
	)

	entries, err := catalog.QueryEntries(ctx, repository.db, query, catalog.LikePattern(term))
	return entries, dberr.Wrap(err, "search_artists")
}

func (repository *PostgresRepository) Get(ctx context.Context, id int) (*Artist, error) {
	a, err := scanArtist(repository.db.QueryRow(ctx, selectArtist, id))
	return a, dberr.WrapResource(err, resource, "get_artist")
}

func (repository *PostgresRepository) GetDetail(ctx context.Context, id int, now time.Time) (*Artist, show.Partition, error) {
	var (
		a      *Artist
		shows  show.Partition
		getErr error
	)

	err := postgres.WithTx(ctx, repository.db, postgres.ReadSnapshot, "get_artist_detail", func(transaction pgx.Tx) error {
		a, getErr = scanArtist(transaction.QueryRow(ctx, selectArtist, id))
		if getErr != nil {
			return getErr
		}

		shows, getErr = show.PartitionFor(ctx, transaction, show.ByArtist, id, now)
		return getErr
	})
	if err != nil {
		return nil, show.Partition{}, dberr.WrapResource(err, resource, "get_artist_detail")
	}

	return a, shows, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreArtist.Table,
		schema.CoreArtist.Name, schema.CoreArtist.City, schema.CoreArtist.State, schema.CoreArtist.Phone,
		schema.CoreArtist.Genres, schema.CoreArtist.ImageLink, schema.CoreArtist.Website, schema.CoreArtist.FacebookLink,
		schema.CoreArtist.SeekingVenue, schema.CoreArtist.SeekingDescription,
		schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
		schema.CoreArtist.ID, schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
	)

	err := postgres.WithTx(ctx, repository.db, pgx.TxOptions{}, "create_artist", func(transaction pgx.Tx) error {
		return transaction.QueryRow(ctx, query,
			a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink, a.Website,
			a.FacebookLink, a.SeekingVenue, a.SeekingDescription,
		).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	})

	return dberr.WrapResource(err, resource, "create_artist")
}

// Update rewrites the artist row in place; the id and its shows are kept.
func (repository *PostgresRepository) Update(ctx context.Context, a *Artist) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6,
			%s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CoreArtist.Table,
		schema.CoreArtist.Name, schema.CoreArtist.City, schema.CoreArtist.State, schema.CoreArtist.Phone,
		schema.CoreArtist.Genres,
		schema.CoreArtist.ImageLink, schema.CoreArtist.Website, schema.CoreArtist.FacebookLink,
		schema.CoreArtist.SeekingVenue, schema.CoreArtist.SeekingDescription, schema.CoreArtist.UpdatedAt,
		schema.CoreArtist.ID,
		schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
	)

	err := postgres.WithTx(ctx, repository.db, pgx.TxOptions{}, "update_artist", func(transaction pgx.Tx) error {
		return transaction.QueryRow(ctx, query,
			a.ID, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink, a.Website,
			a.FacebookLink, a.SeekingVenue, a.SeekingDescription,
		).Scan(&a.CreatedAt, &a.UpdatedAt)
	})

	return dberr.WrapResource(err, resource, "update_artist")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int) (int, error) {
	deleteShows := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreShow.Table, schema.CoreShow.ArtistID)
	deleteArtist := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreArtist.Table, schema.CoreArtist.ID)

	var removed int
	err := postgres.WithTx(ctx, repository.db, pgx.TxOptions{}, "delete_artist", func(transaction pgx.Tx) error {
		tag, err := transaction.Exec(ctx, deleteShows, id)
		if err != nil {
			return err
		}
		removed = int(tag.RowsAffected())

		tag, err = transaction.Exec(ctx, deleteArtist, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resource)
		}
		return nil
	})
	if err != nil {
		return 0, dberr.WrapResource(err, resource, "delete_artist")
	}

	return removed, nil
}
