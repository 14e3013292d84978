package postgres

import (
	"context"
	"database/sql"

	"eventplanner/internal/domain"
)

type ratingRepository struct {
	DB *sql.DB
}

func NewRatingRepository(db *sql.DB) domain.RatingRepository {
	return &ratingRepository{DB: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO event_ratings (event_id, user_id, rating, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, user_id) DO UPDATE SET rating = EXCLUDED.rating
	`
	_, err := r.DB.ExecContext(ctx, query, rating.EventID, rating.UserID, rating.Value, rating.CreatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

// SummaryForCreator averages every rating left on events created by userID.
func (r *ratingRepository) SummaryForCreator(ctx context.Context, userID int64) (*domain.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(er.rating), 0), COUNT(er.rating)
		FROM event_ratings er
		JOIN events e ON e.id = er.event_id
		WHERE e.created_by = $1
	`
	s := &domain.RatingSummary{UserID: userID}
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&s.Average, &s.Count); err != nil {
		return nil, err
	}
	return s, nil
}
