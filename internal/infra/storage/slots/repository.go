package slots

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/dbmetrics"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"tutor_id",
	"day_of_week",
	"start_minutes",
	"end_minutes",
	"active",
	"created_at",
}

// Repository persists recurring weekly availability windows. Windows are
// never deleted physically; Deactivate flips the active flag so historical
// sessions keep a valid slot reference.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new window and returns it with generated fields filled.
func (r *Repository) Create(ctx context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_slots").
		Columns("tutor_id", "day_of_week", "start_minutes", "end_minutes", "active").
		Values(slot.TutorID, slot.DayOfWeek, slot.StartMinutes, slot.EndMinutes, true).
		Suffix("RETURNING id, active, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.Active, &slot.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return slot, nil
}

// GetByID fetches a window regardless of its active flag.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var slot domain.AvailabilitySlot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&slot.TutorID,
		&slot.DayOfWeek,
		&slot.StartMinutes,
		&slot.EndMinutes,
		&slot.Active,
		&slot.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return &slot, nil
}

// GetActiveByTutorID lists a tutor's active windows ordered by weekday and
// start time.
func (r *Repository) GetActiveByTutorID(ctx context.Context, tutorID string) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("availability_slots").
		Where(squirrel.Eq{"tutor_id": tutorID, "active": true}).
		OrderBy("day_of_week ASC, start_minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTutorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTutorID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.TutorID,
			&slot.DayOfWeek,
			&slot.StartMinutes,
			&slot.EndMinutes,
			&slot.Active,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActiveByTutorID - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTutorID - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Deactivate soft-deletes the window.
func (r *Repository) Deactivate(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_slots").
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}
