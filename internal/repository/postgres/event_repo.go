package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"eventplanner/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `e.id, e.title, e.description, e.date, e.location, e.capacity, e.attendees_count,
		e.image, e.created_by, u.username, e.created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var image, creator sql.NullString
	var createdBy sql.NullInt64
	err := s.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Capacity, &e.AttendeesCount,
		&image, &createdBy, &creator, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if image.Valid {
		e.Image = &image.String
	}
	if createdBy.Valid {
		e.CreatedBy = &createdBy.Int64
	}
	if creator.Valid {
		e.CreatorUsername = &creator.String
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, location, capacity, attendees_count, image, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Location, e.Capacity, e.Image, e.CreatedBy, e.CreatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return err
	}
	e.AttendeesCount = 0
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN users u ON u.id = e.created_by
		WHERE e.id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, createdBy *int64) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events e
		LEFT JOIN users u ON u.id = e.created_by
	`
	var args []any
	if createdBy != nil {
		query += ` WHERE e.created_by = $1`
		args = append(args, *createdBy)
	}
	query += ` ORDER BY e.date ASC, e.id ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetAttendance(ctx context.Context, id int64) (*domain.EventAttendance, error) {
	query := `SELECT capacity, attendees_count FROM events WHERE id = $1`
	a := &domain.EventAttendance{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&a.Capacity, &a.AttendeesCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Dependent rows go first so the event delete never trips a foreign key.
var eventCascade = []string{
	`DELETE FROM comments WHERE event_id = $1`,
	`DELETE FROM registrations WHERE event_id = $1`,
	`DELETE FROM favorites WHERE event_id = $1`,
	`DELETE FROM event_ratings WHERE event_id = $1`,
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, q := range eventCascade {
		if _, err := tx.ExecContext(ctx, q, id); err != nil {
			return fmt.Errorf("delete event dependents: %w", err)
		}
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}
