// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
)

// Querier is the subset of [pgxpool.Pool] and [pgx.Tx] used by query helpers,
// so the same SQL can run either standalone or inside a caller's transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts transactions. [pgxpool.Pool] satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// ReadSnapshot is a read-only transaction that sees one consistent snapshot,
// used when a page needs several queries to agree with each other.
var ReadSnapshot = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// WithTx runs fn inside a single transaction.
//
// # Lifecycle
//
// The transaction starts Pending. If fn returns nil the transaction is committed;
// on any error (or panic) it is rolled back and no partial write is visible.
// The underlying connection goes back to the pool on every exit path.
func WithTx(ctx context.Context, db TxBeginner, options pgx.TxOptions, action string, fn func(pgx.Tx) error) (err error) {
	logger := ctxutil.GetLogger(ctx)

	transaction, err := db.BeginTx(ctx, options)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin %s: %w", action, err)
	}

	// Rollback after a successful Commit is a no-op returning ErrTxClosed.
	defer func() {
		rollbackErr := transaction.Rollback(context.WithoutCancel(ctx))
		if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Error("transaction_rollback_failed",
				slog.String("action", action),
				slog.Any("error", rollbackErr),
			)
		}
	}()

	if err = fn(transaction); err != nil {
		if options.AccessMode != pgx.ReadOnly {
			logger.Warn("mutation_rolled_back", slog.String("action", action), slog.Any("error", err))
		}
		return err
	}

	if err = transaction.Commit(ctx); err != nil {
		logger.Warn("mutation_rolled_back", slog.String("action", action), slog.Any("error", err))
		return fmt.Errorf("postgres: failed to commit %s: %w", action, err)
	}

	if options.AccessMode != pgx.ReadOnly {
		logger.Debug("mutation_committed", slog.String("action", action))
	}

	return nil
}
