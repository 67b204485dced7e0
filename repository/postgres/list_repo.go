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

type listRepository struct {
	pool *pgxpool.Pool
}

// NewListRepository returns a Postgres-backed implementation of ListRepository.
func NewListRepository(pool *pgxpool.Pool) repository.ListRepository {
	return &listRepository{pool: pool}
}

var listSortColumns = map[string]string{
	"name":       "l.name",
	"created_at": "l.created_at",
	"updated_at": "l.updated_at",
	"task_count": "task_count",
}

func (r *listRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.List, error) {
	const query = `
	SELECT l.id, l.owner_id, l.name, l.description,
	       COUNT(t.id) AS task_count,
	       l.created_at, l.updated_at
	FROM lists l
	LEFT JOIN tasks t ON t.list_id = l.id
	WHERE l.id = $1 AND l.owner_id = $2
	GROUP BY l.id
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID)

	var list domain.List
	if err := row.Scan(
		&list.ID,
		&list.OwnerID,
		&list.Name,
		&list.Description,
		&list.TaskCount,
		&list.CreatedAt,
		&list.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) List(ctx context.Context, filter repository.ListFilter) ([]domain.List, int, error) {
	query := `
	SELECT l.id, l.owner_id, l.name, l.description,
	       COUNT(t.id) AS task_count,
	       l.created_at, l.updated_at,
	       COUNT(*) OVER() AS total
	FROM lists l
	LEFT JOIN tasks t ON t.list_id = l.id
	WHERE l.owner_id = $1
	  AND ($2 = '' OR l.name ILIKE '%' || $2 || '%' OR l.description ILIKE '%' || $2 || '%')
	GROUP BY l.id
	ORDER BY ` + orderClause(filter.Sort, listSortColumns, "l.name ASC") + `
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.OwnerID, filter.Query, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		lists []domain.List
		total int
	)
	for rows.Next() {
		var list domain.List
		if err := rows.Scan(
			&list.ID,
			&list.OwnerID,
			&list.Name,
			&list.Description,
			&list.TaskCount,
			&list.CreatedAt,
			&list.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, err
		}
		lists = append(lists, list)
	}
	return lists, total, rows.Err()
}

func (r *listRepository) Create(ctx context.Context, list *domain.List) (*domain.List, error) {
	if list == nil {
		return nil, domain.ErrInvalidPayload
	}
	if list.ID == "" {
		list.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO lists (id, owner_id, name, description)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		list.ID,
		list.OwnerID,
		list.Name,
		list.Description,
	).Scan(&list.CreatedAt, &list.UpdatedAt); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *listRepository) Update(ctx context.Context, list *domain.List) error {
	if list == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE lists
	SET name = $3,
		description = $4,
		updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	RETURNING updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		list.ID,
		list.OwnerID,
		list.Name,
		list.Description,
	).Scan(&list.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrListNotFound
		}
		return err
	}
	return nil
}

func (r *listRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM lists WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListNotFound
	}
	return nil
}
