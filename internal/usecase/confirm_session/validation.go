package confirm_session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/payments"
)

func validateRequest(req *Request) error {
	if req.PaymentReferenceID == "" {
		return fmt.Errorf("%w: paymentReferenceId is required", ErrInvalidInput)
	}
	if req.BookingToken == "" {
		return fmt.Errorf("%w: bookingToken is required", ErrInvalidInput)
	}
	if req.TutorID == "" {
		return fmt.Errorf("%w: tutorId is required", ErrInvalidInput)
	}
	if req.StudentID == "" {
		return fmt.Errorf("%w: studentId is required", ErrInvalidInput)
	}
	return nil
}

// parseMetadata recovers the booking details recorded on the intent at
// creation time. The end time is optional; it only feeds the hold release.
func parseMetadata(metadata map[string]string) (*paymentDetails, error) {
	tutorID := metadata[payments.MetadataTutorID]
	studentID := metadata[payments.MetadataStudentID]
	if tutorID == "" || studentID == "" {
		return nil, fmt.Errorf("%w: missing party identifiers", ErrInvalidMetadata)
	}

	hours, err := strconv.ParseFloat(metadata[payments.MetadataHours], 64)
	if err != nil || hours <= 0 {
		return nil, fmt.Errorf("%w: bad hours value %q", ErrInvalidMetadata, metadata[payments.MetadataHours])
	}

	startTime, err := time.Parse(time.RFC3339, metadata[payments.MetadataStartTime])
	if err != nil {
		return nil, fmt.Errorf("%w: bad startTime value %q", ErrInvalidMetadata, metadata[payments.MetadataStartTime])
	}

	details := &paymentDetails{
		tutorID:   tutorID,
		studentID: studentID,
		hours:     hours,
		startTime: startTime,
	}

	if raw := metadata[payments.MetadataEndTime]; raw != "" {
		if endTime, err := time.Parse(time.RFC3339, raw); err == nil {
			details.endTime = endTime
		}
	}

	return details, nil
}
