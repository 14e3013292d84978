package postgres

import (
	"context"
	"database/sql"

	"eventplanner/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{DB: db}
}

func (r *commentRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.event_id, c.user_id, c.text, c.created_at, u.username, u.image
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.event_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c := &domain.Comment{}
		var avatar sql.NullString
		if err := rows.Scan(&c.ID, &c.EventID, &c.UserID, &c.Text, &c.CreatedAt, &c.Username, &avatar); err != nil {
			return nil, err
		}
		if avatar.Valid {
			c.Avatar = &avatar.String
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (event_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, c.EventID, c.UserID, c.Text, c.CreatedAt).Scan(&c.ID)
	if isForeignKeyViolation(err) {
		return domain.ErrNotFound
	}
	return err
}

func (r *commentRepository) Delete(ctx context.Context, eventID, commentID int64) error {
	query := `DELETE FROM comments WHERE id = $1 AND event_id = $2`
	result, err := r.DB.ExecContext(ctx, query, commentID, eventID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
