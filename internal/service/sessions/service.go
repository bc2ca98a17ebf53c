package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	sessionRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/sessions"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions/models"
)

// Service exposes session reads and status updates. Writes of new sessions
// go through the confirmation use case, never through here.
type Service struct {
	sessionRepo SessionRepository
	txManager   TransactionManager
	logger      Logger
}

func NewService(
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID fetches a session. Only the session's tutor or student may see it.
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%s for user=%s", id, userID)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkPartyAccess(session, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to session id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainSession(session), nil
}

// GetStudentSessions lists a student's sessions. Students only see their own.
func (s *Service) GetStudentSessions(ctx context.Context, studentID string, userID string) (*models.SessionListResponse, error) {
	s.logger.Info("GetStudentSessions: fetching sessions for student=%s", studentID)

	if studentID != userID {
		s.logger.Warn("GetStudentSessions: access denied for user=%s to student=%s", userID, studentID)
		return nil, ErrAccessDenied
	}

	list, err := s.sessionRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		s.logger.Error("GetStudentSessions: repository error for student=%s: %v", studentID, err)
		return nil, fmt.Errorf("%w: GetStudentSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStudentSessions: fetched %d sessions for student=%s", len(list), studentID)
	return models.FromDomainSessionList(list), nil
}

// GetTutorSessions lists a tutor's sessions. Tutors only see their own.
func (s *Service) GetTutorSessions(ctx context.Context, tutorID string, userID string) (*models.SessionListResponse, error) {
	s.logger.Info("GetTutorSessions: fetching sessions for tutor=%s", tutorID)

	if tutorID != userID {
		s.logger.Warn("GetTutorSessions: access denied for user=%s to tutor=%s", userID, tutorID)
		return nil, ErrAccessDenied
	}

	list, err := s.sessionRepo.GetByTutorID(ctx, tutorID)
	if err != nil {
		s.logger.Error("GetTutorSessions: repository error for tutor=%s: %v", tutorID, err)
		return nil, fmt.Errorf("%w: GetTutorSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTutorSessions: fetched %d sessions for tutor=%s", len(list), tutorID)
	return models.FromDomainSessionList(list), nil
}

// UpdateStatus moves a session forward (completed or cancelled). Runs
// serializable so two concurrent updates cannot both pass the transition
// check against the same stale row.
func (s *Service) UpdateStatus(ctx context.Context, sessionID string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating session id=%s to status=%s by user=%s",
		sessionID, req.Status, req.UserID)

	if !domain.ValidSessionStatus(req.Status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for session id=%s", req.Status, sessionID)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}
	newStatus := domain.SessionStatus(req.Status)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		session, err := s.sessionRepo.GetByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if err := checkPartyAccess(session, req.UserID); err != nil {
			return err
		}

		if !session.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, session.Status, newStatus)
		}

		return s.sessionRepo.UpdateStatus(ctx, sessionID, newStatus)
	})

	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrInvalidTransition) {
			s.logger.Warn("UpdateStatus: rejected for session id=%s: %v", sessionID, err)
			return err
		}
		s.logger.Error("UpdateStatus: failed for session id=%s: %v", sessionID, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: UpdateStatus - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: session id=%s moved to status=%s", sessionID, newStatus)
	return nil
}

// checkPartyAccess allows only the session's tutor or student through.
func checkPartyAccess(session *domain.Session, userID string) error {
	if session.TutorID == userID || session.StudentID == userID {
		return nil
	}
	return ErrAccessDenied
}
