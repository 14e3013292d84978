package postgres

import (
	"context"
	"testing"
	"time"

	"eventplanner/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRatingRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO event_ratings \(event_id, user_id, rating, created_at\).*ON CONFLICT \(event_id, user_id\) DO UPDATE SET rating = EXCLUDED.rating`).
		WithArgs(int64(1), int64(2), 4, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewRatingRepository(db).Upsert(ctx, &domain.Rating{EventID: 1, UserID: 2, Value: 4, CreatedAt: now})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingRepository_SummaryForCreator(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(er.rating\), 0\), COUNT\(er.rating\)`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))
	mock.ExpectQuery(`SELECT COALESCE`).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(0, 0))

	repo := NewRatingRepository(db)
	s, err := repo.SummaryForCreator(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, domain.RatingSummary{UserID: 7, Average: 4.5, Count: 2}, *s)

	s, err = repo.SummaryForCreator(ctx, 8)
	require.NoError(t, err)
	require.Equal(t, domain.RatingSummary{UserID: 8}, *s)
	require.NoError(t, mock.ExpectationsWereMet())
}
