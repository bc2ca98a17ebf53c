package resolve_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/slots"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/schedule"
)

// UseCase resolves a recurring availability window into the next concrete
// calendar occurrence for the requested sub-range.
type UseCase struct {
	slotRepo     SlotRepository
	timeProvider TimeProvider
	location     *time.Location
	log          Logger
}

func New(slotRepo SlotRepository, timeProvider TimeProvider, log Logger) (*UseCase, error) {
	loc, err := time.LoadLocation(domain.PlatformTimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: load location: %v", ErrInternal, err)
	}

	return &UseCase{
		slotRepo:     slotRepo,
		timeProvider: timeProvider,
		location:     loc,
		log:          log,
	}, nil
}

func (uc *UseCase) Resolve(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Load the availability window
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSlotNotFound, req.SlotID)
		}
		uc.log.Error("Failed to get slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: get slot: %v", ErrInternal, err)
	}

	// 3. The window must belong to the requested tutor and still be offered
	if slot.TutorID != req.TutorID {
		return nil, fmt.Errorf("%w: slot %s does not belong to tutor %s", ErrSlotNotFound, req.SlotID, req.TutorID)
	}
	if !slot.Active {
		return nil, fmt.Errorf("%w: id=%s", ErrSlotInactive, req.SlotID)
	}

	// 4. Resolve the next concrete occurrence in the platform time zone
	occ, err := schedule.NextOccurrence(slot, req.StartMinutes, req.EndMinutes, uc.timeProvider.Now(), uc.location)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidRange) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return nil, fmt.Errorf("%w: resolve occurrence: %v", ErrInternal, err)
	}

	uc.log.Info("Resolved slot %s for tutor %s: %s - %s",
		req.SlotID, req.TutorID, occ.Start.Format(time.RFC3339), occ.End.Format(time.RFC3339))

	return &Response{
		StartTime: occ.Start,
		EndTime:   occ.End,
	}, nil
}
