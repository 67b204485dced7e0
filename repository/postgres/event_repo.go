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

type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a Postgres-backed implementation of EventRepository.
func NewEventRepository(pool *pgxpool.Pool) repository.EventRepository {
	return &eventRepository{pool: pool}
}

var eventSortColumns = map[string]string{
	"start_time": "e.start_time",
	"end_time":   "e.end_time",
	"created_at": "e.created_at",
}

func (r *eventRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Event, error) {
	const query = `
	SELECT e.id, e.task_id, e.start_time, e.end_time, e.created_at, e.updated_at
	FROM events e
	JOIN tasks t ON t.id = e.task_id
	WHERE e.id = $1 AND t.owner_id = $2
	`
	return scanEvent(r.pool.QueryRow(ctx, query, id, ownerID))
}

func (r *eventRepository) GetByTask(ctx context.Context, ownerID, taskID string) (*domain.Event, error) {
	const query = `
	SELECT e.id, e.task_id, e.start_time, e.end_time, e.created_at, e.updated_at
	FROM events e
	JOIN tasks t ON t.id = e.task_id
	WHERE e.task_id = $1 AND t.owner_id = $2
	`
	return scanEvent(r.pool.QueryRow(ctx, query, taskID, ownerID))
}

func (r *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, int, error) {
	query := `
	SELECT e.id, e.task_id, e.start_time, e.end_time, e.created_at, e.updated_at,
	       COUNT(*) OVER() AS total
	FROM events e
	JOIN tasks t ON t.id = e.task_id
	WHERE t.owner_id = $1
	  AND ($2 = '' OR e.task_id::text = $2)
	ORDER BY ` + orderClause(filter.Sort, eventSortColumns, "e.start_time ASC") + `
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.OwnerID, filter.TaskID, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		events []domain.Event
		total  int
	)
	for rows.Next() {
		var ev domain.Event
		if err := rows.Scan(&ev.ID, &ev.TaskID, &ev.StartTime, &ev.EndTime, &ev.CreatedAt, &ev.UpdatedAt, &total); err != nil {
			return nil, 0, err
		}
		events = append(events, ev)
	}
	return events, total, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil {
		return nil, domain.ErrInvalidPayload
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO events (id, task_id, start_time, end_time)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		event.ID,
		event.TaskID,
		event.StartTime,
		event.EndTime,
	).Scan(&event.CreatedAt, &event.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEventExists
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) Update(ctx context.Context, ownerID string, event *domain.Event) error {
	if event == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE events
	SET start_time = $3,
		end_time = $4,
		updated_at = NOW()
	WHERE id = $1
	  AND task_id IN (SELECT id FROM tasks WHERE owner_id = $2)
	`
	tag, err := r.pool.Exec(ctx, query, event.ID, ownerID, event.StartTime, event.EndTime)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `
	DELETE FROM events
	WHERE id = $1
	  AND task_id IN (SELECT id FROM tasks WHERE owner_id = $2)
	`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var ev domain.Event
	if err := row.Scan(&ev.ID, &ev.TaskID, &ev.StartTime, &ev.EndTime, &ev.CreatedAt, &ev.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &ev, nil
}
