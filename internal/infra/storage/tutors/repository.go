package tutors

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/dbmetrics"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/psqlbuilder"
)

// Repository reads the tutor directory and flips approval status. Tutor
// profiles themselves are managed by the marketplace application.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a tutor. Always reads fresh rows; the confirmation flow
// relies on this to observe approval revocations.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Tutor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "hourly_rate", "status", "cal_link", "created_at").
		From("tutors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tutor domain.Tutor
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tutor.ID,
		&tutor.Name,
		&tutor.Email,
		&tutor.HourlyRate,
		&tutor.Status,
		&tutor.CalLink,
		&tutor.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTutorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tutor: %v", ErrScanRow, err)
	}

	return &tutor, nil
}

// UpdateStatus sets the tutor's vetting status (approve/reject).
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.TutorStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tutors").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTutorNotFound
	}

	return nil
}
