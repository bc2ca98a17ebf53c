package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/dbmetrics"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

var sessionColumns = []string{
	"id",
	"tutor_id",
	"student_id",
	"scheduled_start",
	"duration_hours",
	"subtotal",
	"platform_fee",
	"total",
	"payment_reference_id",
	"meeting_link",
	"calendar_event_id",
	"emails_sent",
	"status",
	"created_at",
	"updated_at",
}

// Repository persists confirmed sessions. The payment_reference_id unique
// constraint is the single serialization point of the confirmation flow.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the session. A duplicate payment reference surfaces as
// ErrDuplicatePaymentReference so the caller can fall back to re-reading
// the existing row instead of failing the confirmation.
func (r *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns(
			"id",
			"tutor_id",
			"student_id",
			"scheduled_start",
			"duration_hours",
			"subtotal",
			"platform_fee",
			"total",
			"payment_reference_id",
			"meeting_link",
			"calendar_event_id",
			"emails_sent",
			"status",
		).
		Values(
			session.ID,
			session.TutorID,
			session.StudentID,
			session.ScheduledStart,
			session.DurationHours,
			session.Subtotal,
			session.PlatformFee,
			session.Total,
			session.PaymentReferenceID,
			session.MeetingLink,
			session.CalendarEventID,
			session.EmailsSent,
			session.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return nil, ErrDuplicatePaymentReference
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return session, nil
}

// GetByID fetches a session by its ID.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return r.getByColumn(ctx, "id", id, "GetByID")
}

// GetByPaymentReference fetches the session created for the given payment
// authorization, if any. Used for the idempotency check.
func (r *Repository) GetByPaymentReference(ctx context.Context, paymentReferenceID string) (*domain.Session, error) {
	return r.getByColumn(ctx, "payment_reference_id", paymentReferenceID, "GetByPaymentReference")
}

func (r *Repository) getByColumn(ctx context.Context, column, value, op string) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{column: value}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	session, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan session: %v", ErrScanRow, op, err)
	}

	return session, nil
}

// GetByStudentID lists a student's sessions, newest first.
func (r *Repository) GetByStudentID(ctx context.Context, studentID string) ([]*domain.Session, error) {
	return r.listByColumn(ctx, "student_id", studentID, "GetByStudentID")
}

// GetByTutorID lists a tutor's sessions, newest first.
func (r *Repository) GetByTutorID(ctx context.Context, tutorID string) ([]*domain.Session, error) {
	return r.listByColumn(ctx, "tutor_id", tutorID, "GetByTutorID")
}

func (r *Repository) listByColumn(ctx context.Context, column, value, op string) ([]*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{column: value}).
		OrderBy("scheduled_start DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		result = append(result, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}

// UpdateStatus sets the session status. Transition validity is the service
// layer's responsibility.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
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
		return ErrSessionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var session domain.Session
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&session.ID,
		&session.TutorID,
		&session.StudentID,
		&session.ScheduledStart,
		&session.DurationHours,
		&session.Subtotal,
		&session.PlatformFee,
		&session.Total,
		&session.PaymentReferenceID,
		&session.MeetingLink,
		&session.CalendarEventID,
		&session.EmailsSent,
		&session.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return &session, nil
}
