package bookingtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TTL is how long an issued token stays verifiable. Tokens are stateless:
// within the TTL a captured token can be replayed, which the idempotent
// confirmation path absorbs (one session per payment reference).
const TTL = 24 * time.Hour

const delimiter = ":"

// Service issues and verifies signed booking tokens binding a payment
// reference to a specific student/tutor pair.
//
// Token layout: paymentReferenceID:studentID:tutorID:issuedAtMillis:signature
// where signature is hex-encoded HMAC-SHA256 over the first four fields.
type Service struct {
	secret []byte
}

func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue creates a token for the given booking triple. IDs must not contain
// the delimiter; UUIDs never do, so this only rejects corrupt input.
func (s *Service) Issue(paymentReferenceID, studentID, tutorID string, now time.Time) (string, error) {
	for _, field := range []string{paymentReferenceID, studentID, tutorID} {
		if strings.Contains(field, delimiter) {
			return "", fmt.Errorf("%w: %q", ErrInvalidField, field)
		}
	}

	payload := strings.Join([]string{
		paymentReferenceID,
		studentID,
		tutorID,
		strconv.FormatInt(now.UnixMilli(), 10),
	}, delimiter)

	return payload + delimiter + s.sign(payload), nil
}

// Verify checks the token against the presented booking triple. All four
// checks are mandatory; they run cheapest first and any failure rejects the
// token. The returned errors distinguish the failure mode for logging, but
// callers should collapse them into a single invalid-token response.
func (s *Service) Verify(token, paymentReferenceID, studentID, tutorID string, now time.Time) error {
	parts := strings.Split(token, delimiter)
	if len(parts) != 5 {
		return fmt.Errorf("%w: expected 5 fields, got %d", ErrMalformedToken, len(parts))
	}

	if parts[0] != paymentReferenceID || parts[1] != studentID || parts[2] != tutorID {
		return ErrTokenMismatch
	}

	issuedAtMillis, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad issuedAt field", ErrMalformedToken)
	}
	if now.UnixMilli()-issuedAtMillis > TTL.Milliseconds() {
		return ErrTokenExpired
	}

	payload := strings.Join(parts[:4], delimiter)
	expected := s.sign(payload)
	if !hmac.Equal([]byte(expected), []byte(parts[4])) {
		return ErrBadSignature
	}

	return nil
}

func (s *Service) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
