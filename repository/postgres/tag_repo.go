package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type tagRepository struct {
	pool *pgxpool.Pool
}

// NewTagRepository returns a Postgres-backed implementation of TagRepository.
func NewTagRepository(pool *pgxpool.Pool) repository.TagRepository {
	return &tagRepository{pool: pool}
}

var tagSortColumns = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func (r *tagRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Tag, error) {
	const query = `
	SELECT id, owner_id, name, color, created_at, updated_at
	FROM tags
	WHERE id = $1 AND owner_id = $2
	`
	return scanTag(r.pool.QueryRow(ctx, query, id, ownerID))
}

func (r *tagRepository) GetByIDs(ctx context.Context, ownerID string, ids []string) ([]domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
	SELECT id, owner_id, name, color, created_at, updated_at
	FROM tags
	WHERE owner_id = $1 AND id = ANY($2::uuid[])
	ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query, ownerID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, rows.Err()
}

func (r *tagRepository) List(ctx context.Context, filter repository.TagFilter) ([]domain.Tag, int, error) {
	query := `
	SELECT id, owner_id, name, color, created_at, updated_at,
	       COUNT(*) OVER() AS total
	FROM tags
	WHERE owner_id = $1
	  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
	ORDER BY ` + orderClause(filter.Sort, tagSortColumns, "name ASC") + `
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.OwnerID, filter.Query, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		tags  []domain.Tag
		total int
	)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(
			&tag.ID,
			&tag.OwnerID,
			&tag.Name,
			&tag.Color,
			&tag.CreatedAt,
			&tag.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, err
		}
		tags = append(tags, tag)
	}
	return tags, total, rows.Err()
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	if tag == nil {
		return nil, domain.ErrInvalidPayload
	}
	if tag.ID == "" {
		tag.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tags (id, owner_id, name, color)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		tag.ID,
		tag.OwnerID,
		tag.Name,
		tag.Color,
	).Scan(&tag.CreatedAt, &tag.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewError(domain.ErrCodeConflict, "tag name already in use")
		}
		return nil, err
	}
	return tag, nil
}

func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	if tag == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tags
	SET name = $3,
		color = $4,
		updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		tag.ID,
		tag.OwnerID,
		tag.Name,
		tag.Color,
	).Scan(&tag.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTagNotFound
		}
		if isUniqueViolation(err) {
			return domain.NewError(domain.ErrCodeConflict, "tag name already in use")
		}
		return err
	}
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM tags WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}

func (r *tagRepository) DeleteBatch(ctx context.Context, ownerID string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	const query = `DELETE FROM tags WHERE owner_id = $1 AND id = ANY($2::uuid[])`
	tag, err := r.pool.Exec(ctx, query, ownerID, ids)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var tag domain.Tag
	if err := row.Scan(
		&tag.ID,
		&tag.OwnerID,
		&tag.Name,
		&tag.Color,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}
