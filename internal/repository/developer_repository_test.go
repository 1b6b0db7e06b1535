package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/developer-service/internal/domain"
)

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type stubDB struct {
	rowErr  error
	queries []string
	args    [][]any
}

func (s *stubDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *stubDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	s.queries = append(s.queries, sql)
	s.args = append(s.args, args)
	return errRow{err: s.rowErr}
}

func (s *stubDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func TestDeveloperRepositoryCreate_UniqueViolation(t *testing.T) {
	db := &stubDB{rowErr: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "developers_member_id_key"})}
	repo := NewDeveloperRepository(db)

	err := repo.Create(context.Background(), &domain.Developer{MemberID: "member-1"})

	require.ErrorIs(t, err, ErrDuplicateMemberID)
	require.Len(t, db.args, 1)
	assert.Equal(t, "member-1", db.args[0][0])
}

func TestDeveloperRepositoryCreate_OtherErrorsPassThrough(t *testing.T) {
	boom := &pgconn.PgError{Code: "23502"}
	repo := NewDeveloperRepository(&stubDB{rowErr: boom})

	err := repo.Create(context.Background(), &domain.Developer{MemberID: "member-1"})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDuplicateMemberID)
}

func TestDeveloperRepositoryGetByMemberID_NoRows(t *testing.T) {
	repo := NewDeveloperRepository(&stubDB{rowErr: pgx.ErrNoRows})

	dev, err := repo.GetByMemberID(context.Background(), "missing")

	assert.Nil(t, dev)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdateTargetsMemberID(t *testing.T) {
	db := &stubDB{}
	repo := NewDeveloperRepository(db)

	err := repo.Update(context.Background(), &domain.Developer{
		MemberID:           "member-2",
		DeveloperLevel:     domain.DeveloperLevelMid,
		DeveloperSkillType: domain.DeveloperSkillTypeFullStack,
		ExperienceYears:    6,
		StatusCode:         domain.StatusCodeEmployed,
	})

	require.NoError(t, err)
	require.Len(t, db.args, 1)
	assert.Equal(t, []any{
		domain.DeveloperLevelMid,
		domain.DeveloperSkillTypeFullStack,
		6,
		domain.StatusCodeEmployed,
		"member-2",
	}, db.args[0])
}

func TestWithinTxWithoutPool(t *testing.T) {
	err := NewTransactor(nil).WithinTx(context.Background(), func(context.Context, Repositories) error {
		t.Fatal("fn must not run without a pool")
		return nil
	})
	assert.ErrorIs(t, err, ErrNoDatabase)
}
