package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

var taskSortColumns = map[string]string{
	"title":      "t.title",
	"priority":   "t.priority",
	"due_date":   "t.due_date",
	"created_at": "t.created_at",
	"updated_at": "t.updated_at",
	"list":       "l.name",
}

// Default ordering mirrors the filter page: priority, then due date, then title.
const taskDefaultOrder = "t.priority ASC, t.due_date ASC NULLS LAST, t.title ASC"

const taskColumns = `
	t.id, t.owner_id, t.list_id, t.title, t.description, t.priority,
	t.due_date, t.is_completed,
	COALESCE(array_agg(tt.tag_id::text) FILTER (WHERE tt.tag_id IS NOT NULL), '{}') AS tag_ids,
	t.created_at, t.updated_at`

func (r *taskRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	const query = `
	SELECT` + taskColumns + `
	FROM tasks t
	LEFT JOIN task_tags tt ON tt.task_id = t.id
	WHERE t.id = $1 AND t.owner_id = $2
	GROUP BY t.id
	`
	return scanTask(r.pool.QueryRow(ctx, query, id, ownerID), nil)
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, int, error) {
	query := `
	SELECT` + taskColumns + `,
	       COUNT(*) OVER() AS total
	FROM tasks t
	JOIN lists l ON l.id = t.list_id
	LEFT JOIN task_tags tt ON tt.task_id = t.id
	WHERE t.owner_id = $1
	  AND ($2 = '' OR t.title ILIKE '%' || $2 || '%'
	       OR t.description ILIKE '%' || $2 || '%'
	       OR l.name ILIKE '%' || $2 || '%'
	       OR EXISTS (
	           SELECT 1 FROM task_tags x
	           JOIN tags g ON g.id = x.tag_id
	           WHERE x.task_id = t.id AND g.name ILIKE '%' || $2 || '%'))
	  AND ($3 = '' OR t.list_id::text = $3)
	  AND ($4 = 0 OR t.priority = $4)
	  AND ($5::boolean IS NULL OR t.is_completed = $5)
	  AND (cardinality($6::uuid[]) = 0 OR (
	       SELECT COUNT(DISTINCT x.tag_id) FROM task_tags x
	       WHERE x.task_id = t.id AND x.tag_id = ANY($6::uuid[])
	      ) = cardinality($6::uuid[]))
	GROUP BY t.id, l.name
	ORDER BY ` + orderClause(filter.Sort, taskSortColumns, taskDefaultOrder) + `
	LIMIT $7 OFFSET $8
	`

	tagIDs := filter.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}

	rows, err := r.pool.Query(ctx, query,
		filter.OwnerID,
		filter.Query,
		filter.ListID,
		filter.Priority,
		filter.Done,
		tagIDs,
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		tasks []domain.Task
		total int
	)
	for rows.Next() {
		task, err := scanTask(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, total, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const query = `
	INSERT INTO tasks (id, owner_id, list_id, title, description, priority, due_date, is_completed)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at, updated_at
	`

	var due interface{}
	if task.DueDate != nil {
		due = *task.DueDate
	}

	if err := tx.QueryRow(ctx, query,
		task.ID,
		task.OwnerID,
		task.ListID,
		task.Title,
		task.Description,
		task.Priority,
		due,
		task.Completed,
	).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	if err := replaceTaskTags(ctx, tx, task.ID, task.TagIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const query = `
	UPDATE tasks
	SET list_id = $3,
		title = $4,
		description = $5,
		priority = $6,
		due_date = $7,
		is_completed = $8,
		updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	RETURNING updated_at
	`

	var due interface{}
	if task.DueDate != nil {
		due = *task.DueDate
	}

	if err := tx.QueryRow(ctx, query,
		task.ID,
		task.OwnerID,
		task.ListID,
		task.Title,
		task.Description,
		task.Priority,
		due,
		task.Completed,
	).Scan(&task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	if err := replaceTaskTags(ctx, tx, task.ID, task.TagIDs); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *taskRepository) SetCompleted(ctx context.Context, ownerID, id string, done bool) error {
	const query = `
	UPDATE tasks
	SET is_completed = $3,
		updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, id, ownerID, done)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func replaceTaskTags(ctx context.Context, tx pgx.Tx, taskID string, tagIDs []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM task_tags WHERE task_id = $1`, taskID); err != nil {
		return err
	}
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO task_tags (task_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			taskID, tagID,
		); err != nil {
			return err
		}
	}
	return nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}, total *int) (*domain.Task, error) {
	var task domain.Task
	var due *time.Time

	dest := []interface{}{
		&task.ID,
		&task.OwnerID,
		&task.ListID,
		&task.Title,
		&task.Description,
		&task.Priority,
		&due,
		&task.Completed,
		&task.TagIDs,
		&task.CreatedAt,
		&task.UpdatedAt,
	}
	if total != nil {
		dest = append(dest, total)
	}

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.DueDate = due
	if task.TagIDs == nil {
		task.TagIDs = []string{}
	}
	return &task, nil
}
