package create_payment_intent

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/hold"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/slots"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/payments"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/pricing"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/schedule"
)

// UseCase prices a slot sub-range, holds it, opens a payment intent at the
// gateway and mints the booking token that binds the eventual confirmation
// to this student, tutor and payment.
type UseCase struct {
	slotRepo     SlotRepository
	tutorRepo    TutorRepository
	gateway      PaymentGateway
	tokens       TokenIssuer
	holds        HoldStore
	timeProvider TimeProvider
	location     *time.Location

	currency string
	holdTTL  time.Duration

	log Logger
}

func New(
	slotRepo SlotRepository,
	tutorRepo TutorRepository,
	gateway PaymentGateway,
	tokens TokenIssuer,
	holds HoldStore,
	timeProvider TimeProvider,
	currency string,
	holdTTL time.Duration,
	log Logger,
) (*UseCase, error) {
	loc, err := time.LoadLocation(domain.PlatformTimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: load location: %v", ErrInternal, err)
	}

	return &UseCase{
		slotRepo:     slotRepo,
		tutorRepo:    tutorRepo,
		gateway:      gateway,
		tokens:       tokens,
		holds:        holds,
		timeProvider: timeProvider,
		location:     loc,
		currency:     currency,
		holdTTL:      holdTTL,
		log:          log,
	}, nil
}

func (uc *UseCase) Create(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Load the availability window and check ownership
	slot, err := uc.slotRepo.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slots.ErrSlotNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSlotNotFound, req.SlotID)
		}
		uc.log.Error("Failed to get slot %s: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: get slot: %v", ErrInternal, err)
	}
	if slot.TutorID != req.TutorID || !slot.Active {
		return nil, fmt.Errorf("%w: id=%s", ErrSlotNotFound, req.SlotID)
	}

	// 3. Fresh tutor read: rate and eligibility at intent time
	tutor, err := uc.tutorRepo.GetByID(ctx, req.TutorID)
	if err != nil {
		if errors.Is(err, tutors.ErrTutorNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrTutorNotFound, req.TutorID)
		}
		uc.log.Error("Failed to get tutor %s: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: get tutor: %v", ErrInternal, err)
	}
	if !tutor.IsApproved() {
		return nil, fmt.Errorf("%w: id=%s status=%s", ErrTutorNotEligible, tutor.ID, tutor.Status)
	}

	// 4. Resolve the next concrete occurrence
	now := uc.timeProvider.Now()
	occ, err := schedule.NextOccurrence(slot, req.StartMinutes, req.EndMinutes, now, uc.location)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidRange) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		return nil, fmt.Errorf("%w: resolve occurrence: %v", ErrInternal, err)
	}

	// 5. Price the range
	hours := float64(req.EndMinutes-req.StartMinutes) / 60
	quote := pricing.Quote(tutor.HourlyRate, hours)

	// 6. Hold the range. Redis being down only loses the hold optimization,
	// so degrade instead of failing the booking.
	if uc.holds != nil {
		key := hold.Key(req.TutorID, slot.DayOfWeek, req.StartMinutes, req.EndMinutes)
		acquired, err := uc.holds.Acquire(ctx, key, uc.holdTTL)
		if err != nil {
			uc.log.Warn("Reservation hold unavailable, continuing without it: %v", err)
		} else if !acquired {
			return nil, fmt.Errorf("%w: key=%s", ErrSlotHeld, key)
		}
	}

	// 7. Open the intent at the gateway; metadata carries everything
	// confirmation needs to reprice and authorize
	metadata := map[string]string{
		payments.MetadataTutorID:   req.TutorID,
		payments.MetadataStudentID: req.StudentID,
		payments.MetadataHours:     strconv.FormatFloat(hours, 'f', -1, 64),
		payments.MetadataStartTime: occ.Start.Format(time.RFC3339),
		payments.MetadataEndTime:   occ.End.Format(time.RFC3339),
	}

	intent, err := uc.gateway.CreateIntent(ctx, pricing.MinorUnits(quote.Total), uc.currency, metadata)
	if err != nil {
		uc.log.Error("Failed to create payment intent for tutor %s: %v", req.TutorID, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	// 8. Mint the booking token bound to this intent
	token, err := uc.tokens.Issue(intent.ID, req.StudentID, req.TutorID, now)
	if err != nil {
		uc.log.Error("Failed to issue booking token for intent %s: %v", intent.ID, err)
		return nil, fmt.Errorf("%w: issue token: %v", ErrInternal, err)
	}

	uc.log.Info("Created payment intent %s: tutor=%s student=%s total=%d %s",
		intent.ID, req.TutorID, req.StudentID, quote.Total, uc.currency)

	return &Response{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		BookingToken: token,
		Subtotal:     quote.Subtotal,
		Fee:          quote.Fee,
		Total:        quote.Total,
		Currency:     uc.currency,
		StartTime:    occ.Start,
		EndTime:      occ.End,
	}, nil
}
