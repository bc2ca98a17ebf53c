package students

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/dbmetrics"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/psqlbuilder"
)

// Repository reads the student directory.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a student.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "created_at").
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var student domain.Student
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan student: %v", ErrScanRow, err)
	}

	return &student, nil
}
