package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/domain"
)

// ErrInvalidRange is returned when the requested minute range does not fit
// inside the availability window. The wrapped message names the failing
// bound.
var ErrInvalidRange = errors.New("schedule: invalid requested range")

// Occurrence is one concrete future calendar instance of a recurring window.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// NextOccurrence resolves the next real calendar occurrence of the slot's
// weekday on or after now, applying the requested minute offsets in the
// given location. Pure function of its inputs.
//
// When now already falls on the slot's weekday but the window's start time
// has elapsed, the occurrence rolls a full week forward: a booking is always
// a genuine future occurrence, never today-in-the-past and never "now"
// exactly.
func NextOccurrence(slot *domain.AvailabilitySlot, startMinutes, endMinutes int, now time.Time, loc *time.Location) (Occurrence, error) {
	if startMinutes < slot.StartMinutes {
		return Occurrence{}, fmt.Errorf("%w: requestedStart %d is before window start %d",
			ErrInvalidRange, startMinutes, slot.StartMinutes)
	}
	if endMinutes <= startMinutes {
		return Occurrence{}, fmt.Errorf("%w: requestedEnd %d is not after requestedStart %d",
			ErrInvalidRange, endMinutes, startMinutes)
	}
	if endMinutes > slot.EndMinutes {
		return Occurrence{}, fmt.Errorf("%w: requestedEnd %d is after window end %d",
			ErrInvalidRange, endMinutes, slot.EndMinutes)
	}

	localNow := now.In(loc)

	daysUntil := (slot.DayOfWeek - int(localNow.Weekday()) + 7) % 7
	nowMinutes := localNow.Hour()*60 + localNow.Minute()
	if daysUntil == 0 && nowMinutes >= slot.StartMinutes {
		daysUntil = 7
	}

	anchor := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, daysUntil)

	return Occurrence{
		Start: anchor.Add(time.Duration(startMinutes) * time.Minute),
		End:   anchor.Add(time.Duration(endMinutes) * time.Minute),
	}, nil
}
