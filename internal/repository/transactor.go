package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories groups the repositories bound to one unit of work.
type Repositories struct {
	Developers        DeveloperRepository
	RetiredDevelopers RetiredDeveloperRepository
}

// Transactor runs fn inside a single all-or-nothing unit of work.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// ErrNoDatabase is returned when no postgres pool was configured.
var ErrNoDatabase = errors.New("postgres pool not configured")

type pgTransactor struct {
	pool *pgxpool.Pool
}

// NewTransactor builds a Transactor on top of a pgx pool.
func NewTransactor(pool *pgxpool.Pool) Transactor {
	return &pgTransactor{pool: pool}
}

func (t *pgTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) (err error) {
	if t.pool == nil {
		return ErrNoDatabase
	}

	tx, err := t.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(ctx, Repositories{
		Developers:        NewDeveloperRepository(tx),
		RetiredDevelopers: NewRetiredDeveloperRepository(tx),
	}); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateMemberID
		}
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
