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

type reminderRepository struct {
	pool *pgxpool.Pool
}

// NewReminderRepository returns a Postgres-backed implementation of ReminderRepository.
// All operations join through tasks so reminders stay scoped to the task owner.
func NewReminderRepository(pool *pgxpool.Pool) repository.ReminderRepository {
	return &reminderRepository{pool: pool}
}

var reminderSortColumns = map[string]string{
	"remind_at":  "r.remind_at",
	"created_at": "r.created_at",
}

func (r *reminderRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Reminder, error) {
	const query = `
	SELECT r.id, r.task_id, r.remind_at, r.note, r.created_at
	FROM reminders r
	JOIN tasks t ON t.id = r.task_id
	WHERE r.id = $1 AND t.owner_id = $2
	`
	return scanReminder(r.pool.QueryRow(ctx, query, id, ownerID))
}

func (r *reminderRepository) List(ctx context.Context, filter repository.ReminderFilter) ([]domain.Reminder, int, error) {
	query := `
	SELECT r.id, r.task_id, r.remind_at, r.note, r.created_at,
	       COUNT(*) OVER() AS total
	FROM reminders r
	JOIN tasks t ON t.id = r.task_id
	WHERE t.owner_id = $1
	  AND ($2 = '' OR r.task_id::text = $2)
	ORDER BY ` + orderClause(filter.Sort, reminderSortColumns, "r.remind_at ASC") + `
	LIMIT $3 OFFSET $4
	`
	rows, err := r.pool.Query(ctx, query, filter.OwnerID, filter.TaskID, clampLimit(filter.Limit), filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		reminders []domain.Reminder
		total     int
	)
	for rows.Next() {
		var rem domain.Reminder
		if err := rows.Scan(&rem.ID, &rem.TaskID, &rem.RemindAt, &rem.Note, &rem.CreatedAt, &total); err != nil {
			return nil, 0, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, total, rows.Err()
}

func (r *reminderRepository) Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder == nil {
		return nil, domain.ErrInvalidPayload
	}
	if reminder.ID == "" {
		reminder.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO reminders (id, task_id, remind_at, note)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		reminder.ID,
		reminder.TaskID,
		reminder.RemindAt,
		reminder.Note,
	).Scan(&reminder.CreatedAt); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (r *reminderRepository) Update(ctx context.Context, ownerID string, reminder *domain.Reminder) error {
	if reminder == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE reminders
	SET remind_at = $3,
		note = $4
	WHERE id = $1
	  AND task_id IN (SELECT id FROM tasks WHERE owner_id = $2)
	`
	tag, err := r.pool.Exec(ctx, query, reminder.ID, ownerID, reminder.RemindAt, reminder.Note)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func (r *reminderRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `
	DELETE FROM reminders
	WHERE id = $1
	  AND task_id IN (SELECT id FROM tasks WHERE owner_id = $2)
	`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReminderNotFound
	}
	return nil
}

func scanReminder(row pgx.Row) (*domain.Reminder, error) {
	var rem domain.Reminder
	if err := row.Scan(&rem.ID, &rem.TaskID, &rem.RemindAt, &rem.Note, &rem.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReminderNotFound
		}
		return nil, err
	}
	return &rem, nil
}
