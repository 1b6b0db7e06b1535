package repository

import (
	"context"

	"github.com/spec-kit/developer-service/internal/domain"
)

// RetiredDeveloperRepository stores archive entries for retired developers.
type RetiredDeveloperRepository interface {
	Create(ctx context.Context, retired *domain.RetiredDeveloper) error
	List(ctx context.Context) ([]domain.RetiredDeveloper, error)
}

type retiredDeveloperRepository struct {
	db DBTX
}

// NewRetiredDeveloperRepository builds repository.
func NewRetiredDeveloperRepository(db DBTX) RetiredDeveloperRepository {
	return &retiredDeveloperRepository{db: db}
}

func (r *retiredDeveloperRepository) Create(ctx context.Context, retired *domain.RetiredDeveloper) error {
	const query = `
        INSERT INTO retired_developers (member_id, name)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		retired.MemberID,
		retired.Name,
	).Scan(&retired.ID, &retired.CreatedAt, &retired.UpdatedAt)
}

func (r *retiredDeveloperRepository) List(ctx context.Context) ([]domain.RetiredDeveloper, error) {
	const query = `
        SELECT id, member_id, name, created_at, updated_at
        FROM retired_developers ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.RetiredDeveloper
	for rows.Next() {
		var retired domain.RetiredDeveloper
		if err := rows.Scan(
			&retired.ID,
			&retired.MemberID,
			&retired.Name,
			&retired.CreatedAt,
			&retired.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, retired)
	}
	return result, rows.Err()
}
