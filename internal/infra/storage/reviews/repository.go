package reviews

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/dbmetrics"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/psqlbuilder"
)

// Repository persists student reviews of tutors.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a review and returns it with generated fields filled.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("tutor_id", "student_id", "rating", "comment").
		Values(review.TutorID, review.StudentID, review.Rating, review.Comment).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// GetByTutorID lists a tutor's reviews, newest first.
func (r *Repository) GetByTutorID(ctx context.Context, tutorID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "tutor_id", "student_id", "rating", "comment", "created_at").
		From("reviews").
		Where(squirrel.Eq{"tutor_id": tutorID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTutorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTutorID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.TutorID,
			&review.StudentID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByTutorID - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByTutorID - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetAverageRating returns the tutor's mean rating, 0 when unreviewed.
func (r *Repository) GetAverageRating(ctx context.Context, tutorID string) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)").
		From("reviews").
		Where(squirrel.Eq{"tutor_id": tutorID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetAverageRating - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("%w: GetAverageRating - scan average: %v", ErrScanRow, err)
	}

	return avg, nil
}
