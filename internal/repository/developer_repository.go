package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/developer-service/internal/domain"
)

// ErrDuplicateMemberID is returned when the member_id unique constraint rejects an insert.
var ErrDuplicateMemberID = errors.New("developer member id already exists")

const uniqueViolation = "23505"

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// DeveloperRepository handles persistence for developer records.
type DeveloperRepository interface {
	Create(ctx context.Context, dev *domain.Developer) error
	Update(ctx context.Context, dev *domain.Developer) error
	GetByMemberID(ctx context.Context, memberID string) (*domain.Developer, error)
	ListByStatus(ctx context.Context, status domain.StatusCode) ([]domain.Developer, error)
}

type developerRepository struct {
	db DBTX
}

// NewDeveloperRepository instantiates the repository.
func NewDeveloperRepository(db DBTX) DeveloperRepository {
	return &developerRepository{db: db}
}

const developerColumns = `id, member_id, name, age, developer_level, developer_skill_type, experience_years, status_code, created_at, updated_at`

func (r *developerRepository) Create(ctx context.Context, dev *domain.Developer) error {
	const query = `
        INSERT INTO developers (member_id, name, age, developer_level, developer_skill_type, experience_years, status_code)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		dev.MemberID,
		dev.Name,
		dev.Age,
		dev.DeveloperLevel,
		dev.DeveloperSkillType,
		dev.ExperienceYears,
		dev.StatusCode,
	).Scan(&dev.ID, &dev.CreatedAt, &dev.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateMemberID
	}
	return err
}

func (r *developerRepository) Update(ctx context.Context, dev *domain.Developer) error {
	const query = `
        UPDATE developers
        SET developer_level=$1, developer_skill_type=$2, experience_years=$3, status_code=$4, updated_at=NOW()
        WHERE member_id=$5
        RETURNING updated_at`

	return r.db.QueryRow(ctx, query,
		dev.DeveloperLevel,
		dev.DeveloperSkillType,
		dev.ExperienceYears,
		dev.StatusCode,
		dev.MemberID,
	).Scan(&dev.UpdatedAt)
}

func (r *developerRepository) GetByMemberID(ctx context.Context, memberID string) (*domain.Developer, error) {
	query := `SELECT ` + developerColumns + ` FROM developers WHERE member_id=$1`

	dev, err := scanDeveloper(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		return nil, err
	}
	return dev, nil
}

func (r *developerRepository) ListByStatus(ctx context.Context, status domain.StatusCode) ([]domain.Developer, error) {
	query := `SELECT ` + developerColumns + ` FROM developers WHERE status_code=$1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Developer
	for rows.Next() {
		dev, err := scanDeveloper(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *dev)
	}
	return result, rows.Err()
}

func scanDeveloper(row pgx.Row) (*domain.Developer, error) {
	var dev domain.Developer
	if err := row.Scan(
		&dev.ID,
		&dev.MemberID,
		&dev.Name,
		&dev.Age,
		&dev.DeveloperLevel,
		&dev.DeveloperSkillType,
		&dev.ExperienceYears,
		&dev.StatusCode,
		&dev.CreatedAt,
		&dev.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dev, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
