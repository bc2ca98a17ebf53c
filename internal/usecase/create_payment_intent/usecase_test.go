package create_payment_intent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/hold"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/slots"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/payments"
)

type fakeSlotRepo struct {
	slot *domain.AvailabilitySlot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id string) (*domain.AvailabilitySlot, error) {
	if r.slot == nil || r.slot.ID != id {
		return nil, slots.ErrSlotNotFound
	}
	return r.slot, nil
}

type fakeTutorRepo struct {
	tutor *domain.Tutor
}

func (r *fakeTutorRepo) GetByID(_ context.Context, id string) (*domain.Tutor, error) {
	if r.tutor == nil || r.tutor.ID != id {
		return nil, tutors.ErrTutorNotFound
	}
	return r.tutor, nil
}

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	lastMetadata map[string]string
	err          error
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*payments.Intent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.lastAmount = amount
	g.lastCurrency = currency
	g.lastMetadata = metadata
	return &payments.Intent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Status:       payments.StatusRequiresPayment,
		Amount:       amount,
		Currency:     currency,
		Metadata:     metadata,
	}, nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(payRef, studentID, tutorID string, _ time.Time) (string, error) {
	return "tok:" + payRef + ":" + studentID + ":" + tutorID, nil
}

type fakeHolds struct {
	acquired bool
	err      error
	lastKey  string
}

func (h *fakeHolds) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	h.lastKey = key
	if h.err != nil {
		return false, h.err
	}
	return h.acquired, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testFixtures(t *testing.T) (*domain.AvailabilitySlot, *domain.Tutor, time.Time) {
	t.Helper()
	loc, err := time.LoadLocation(domain.PlatformTimeZone)
	require.NoError(t, err)

	slot := &domain.AvailabilitySlot{
		ID:           "slot-1",
		TutorID:      "tutor-1",
		DayOfWeek:    3,
		StartMinutes: 540,
		EndMinutes:   720,
		Active:       true,
	}
	tutor := &domain.Tutor{
		ID:         "tutor-1",
		Name:       "Ana",
		HourlyRate: 400,
		Status:     domain.TutorStatusApproved,
	}
	// Monday 2026-01-05, 10:00 local.
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, loc)
	return slot, tutor, now
}

func newUseCase(t *testing.T, slot *domain.AvailabilitySlot, tutor *domain.Tutor, gw *fakeGateway, holds HoldStore, now time.Time) *UseCase {
	t.Helper()
	uc, err := New(
		&fakeSlotRepo{slot: slot},
		&fakeTutorRepo{tutor: tutor},
		gw,
		fakeTokens{},
		holds,
		&fixedTime{now: now},
		"mxn",
		15*time.Minute,
		noopLogger{},
	)
	require.NoError(t, err)
	return uc
}

func TestCreate_Success(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	gw := &fakeGateway{}
	holds := &fakeHolds{acquired: true}
	uc := newUseCase(t, slot, tutor, gw, holds, now)

	resp, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   690,
	})
	require.NoError(t, err)

	// 400/hr * 1.5h = 600, fee 48, total 648, charged in minor units.
	assert.Equal(t, int64(600), resp.Subtotal)
	assert.Equal(t, int64(48), resp.Fee)
	assert.Equal(t, int64(648), resp.Total)
	assert.Equal(t, int64(64800), gw.lastAmount)
	assert.Equal(t, "mxn", gw.lastCurrency)

	assert.Equal(t, "pi_test_1", resp.IntentID)
	assert.Equal(t, "pi_test_1_secret", resp.ClientSecret)
	assert.Equal(t, "tok:pi_test_1:student-1:tutor-1", resp.BookingToken)

	assert.Equal(t, "tutor-1", gw.lastMetadata[payments.MetadataTutorID])
	assert.Equal(t, "student-1", gw.lastMetadata[payments.MetadataStudentID])
	assert.Equal(t, "1.5", gw.lastMetadata[payments.MetadataHours])
	assert.Equal(t, resp.StartTime.Format(time.RFC3339), gw.lastMetadata[payments.MetadataStartTime])
	assert.Equal(t, resp.EndTime.Format(time.RFC3339), gw.lastMetadata[payments.MetadataEndTime])

	assert.Equal(t, hold.Key("tutor-1", 3, 600, 690), holds.lastKey)
}

func TestCreate_SlotHeld(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	uc := newUseCase(t, slot, tutor, &fakeGateway{}, &fakeHolds{acquired: false}, now)

	_, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   690,
	})
	assert.ErrorIs(t, err, ErrSlotHeld)
}

func TestCreate_HoldStoreDownDegrades(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	gw := &fakeGateway{}
	holds := &fakeHolds{err: hold.ErrUnavailable}
	uc := newUseCase(t, slot, tutor, gw, holds, now)

	resp, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   690,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_test_1", resp.IntentID)
}

func TestCreate_NilHoldStore(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	uc := newUseCase(t, slot, tutor, &fakeGateway{}, nil, now)

	_, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   690,
	})
	require.NoError(t, err)
}

func TestCreate_TutorNotEligible(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	tutor.Status = domain.TutorStatusPending
	uc := newUseCase(t, slot, tutor, &fakeGateway{}, &fakeHolds{acquired: true}, now)

	_, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   690,
	})
	assert.ErrorIs(t, err, ErrTutorNotEligible)
}

func TestCreate_InactiveSlot(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	slot.Active = false
	uc := newUseCase(t, slot, tutor, &fakeGateway{}, &fakeHolds{acquired: true}, now)

	_, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   690,
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreate_RangeOutsideWindow(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	uc := newUseCase(t, slot, tutor, &fakeGateway{}, &fakeHolds{acquired: true}, now)

	_, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 500,
		EndMinutes:   690,
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCreate_GatewayError(t *testing.T) {
	slot, tutor, now := testFixtures(t)
	gw := &fakeGateway{err: errors.New("boom")}
	uc := newUseCase(t, slot, tutor, gw, &fakeHolds{acquired: true}, now)

	_, err := uc.Create(context.Background(), &Request{
		SlotID:       "slot-1",
		TutorID:      "tutor-1",
		StudentID:    "student-1",
		StartMinutes: 600,
		EndMinutes:   690,
	})
	assert.ErrorIs(t, err, ErrGateway)
}
