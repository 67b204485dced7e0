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

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation of CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) repository.CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, string, error) {
	const query = `
	SELECT c.id, c.task_id, c.author_id, c.body, c.created_at, t.owner_id
	FROM comments c
	JOIN tasks t ON t.id = c.task_id
	WHERE c.id = $1
	`
	var (
		comment   domain.Comment
		taskOwner string
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.TaskID,
		&comment.AuthorID,
		&comment.Body,
		&comment.CreatedAt,
		&taskOwner,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", domain.ErrCommentNotFound
		}
		return nil, "", err
	}
	return &comment, taskOwner, nil
}

func (r *commentRepository) ListByTask(ctx context.Context, ownerID, taskID string, limit, offset int) ([]domain.Comment, int, error) {
	// Newest comments first.
	const query = `
	SELECT c.id, c.task_id, c.author_id, c.body, c.created_at,
	       COUNT(*) OVER() AS total
	FROM comments c
	JOIN tasks t ON t.id = c.task_id
	WHERE c.task_id = $1 AND t.owner_id = $2
	ORDER BY c.created_at DESC
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, taskID, ownerID, clampLimit(limit), offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		comments []domain.Comment
		total    int
	)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.AuthorID, &c.Body, &c.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		comments = append(comments, c)
	}
	return comments, total, rows.Err()
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if comment == nil {
		return nil, domain.ErrInvalidPayload
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO comments (id, task_id, author_id, body)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.TaskID,
		comment.AuthorID,
		comment.Body,
	).Scan(&comment.CreatedAt); err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM comments WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
