package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventplanner/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND user_id = $2`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Attend takes a seat and records the registration in one transaction. The guarded
// UPDATE serializes concurrent attendees on the event row, so the counter can never
// pass capacity.
func (r *registrationRepository) Attend(ctx context.Context, eventID, userID int64, at time.Time) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE events SET attendees_count = attendees_count + 1
		WHERE id = $1 AND attendees_count < capacity
	`, eventID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrCapacityExceeded
	}

	result, err = tx.ExecContext(ctx, `
		INSERT INTO registrations (user_id, event_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`, userID, eventID, at)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrAlreadyRegistered
	}
	return tx.Commit()
}

// Unattend removes the registration and releases its seat in one transaction.
func (r *registrationRepository) Unattend(ctx context.Context, eventID, userID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return domain.ErrAttendanceNotFound
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE events SET attendees_count = attendees_count - 1
		WHERE id = $1 AND attendees_count > 0
	`, eventID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *registrationRepository) ListEventIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT event_id
		FROM registrations
		WHERE user_id = $1
		ORDER BY event_id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
