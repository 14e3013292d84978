package postgres

import (
	"context"
	"database/sql"

	"eventplanner/internal/domain"
)

type favoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepository(db *sql.DB) domain.FavoriteRepository {
	return &favoriteRepository{DB: db}
}

func (r *favoriteRepository) Exists(ctx context.Context, eventID, userID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM favorites WHERE event_id = $1 AND user_id = $2`
	var n int
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *favoriteRepository) Add(ctx context.Context, fav *domain.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, event_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, fav.UserID, fav.EventID, fav.CreatedAt)
	switch {
	case isUserForeignKeyViolation(err):
		return domain.ErrUserNotFound
	case isForeignKeyViolation(err):
		return domain.ErrNotFound
	}
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, eventID, userID int64) error {
	query := `DELETE FROM favorites WHERE event_id = $1 AND user_id = $2`
	_, err := r.DB.ExecContext(ctx, query, eventID, userID)
	return err
}

func (r *favoriteRepository) ListEventsByUser(ctx context.Context, userID int64) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM favorites f
		JOIN events e ON e.id = f.event_id
		LEFT JOIN users u ON u.id = e.created_by
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
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
