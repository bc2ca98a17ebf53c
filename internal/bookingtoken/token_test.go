package bookingtoken

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func TestIssueAndVerify(t *testing.T) {
	svc := New("test-secret")

	token, err := svc.Issue("pi_123", "student-a", "tutor-x", issuedAt)
	require.NoError(t, err)

	err = svc.Verify(token, "pi_123", "student-a", "tutor-x", issuedAt.Add(time.Hour))
	assert.NoError(t, err)
}

func TestVerify_RejectsSubstitutedFields(t *testing.T) {
	svc := New("test-secret")

	token, err := svc.Issue("pi_123", "student-a", "tutor-x", issuedAt)
	require.NoError(t, err)

	now := issuedAt.Add(time.Hour)

	tests := []struct {
		name                string
		pay, student, tutor string
	}{
		{"different student", "pi_123", "student-b", "tutor-x"},
		{"different tutor", "pi_123", "student-a", "tutor-y"},
		{"different payment", "pi_456", "student-a", "tutor-x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Verify(token, tt.pay, tt.student, tt.tutor, now)
			assert.ErrorIs(t, err, ErrTokenMismatch)
		})
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	svc := New("test-secret")

	token, err := svc.Issue("pi_123", "student-a", "tutor-x", issuedAt)
	require.NoError(t, err)

	err = svc.Verify(token, "pi_123", "student-a", "tutor-x", issuedAt.Add(TTL+time.Minute))
	assert.ErrorIs(t, err, ErrTokenExpired)

	// Exactly at the TTL boundary the token is still good.
	err = svc.Verify(token, "pi_123", "student-a", "tutor-x", issuedAt.Add(TTL))
	assert.NoError(t, err)
}

func TestVerify_RejectsTamperedSignature(t *testing.T) {
	svc := New("test-secret")

	token, err := svc.Issue("pi_123", "student-a", "tutor-x", issuedAt)
	require.NoError(t, err)

	parts := strings.Split(token, ":")
	require.Len(t, parts, 5)
	parts[4] = strings.Repeat("0", len(parts[4]))
	tampered := strings.Join(parts, ":")

	err = svc.Verify(tampered, "pi_123", "student-a", "tutor-x", issuedAt.Add(time.Hour))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	token, err := New("secret-one").Issue("pi_123", "student-a", "tutor-x", issuedAt)
	require.NoError(t, err)

	err = New("secret-two").Verify(token, "pi_123", "student-a", "tutor-x", issuedAt.Add(time.Hour))
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_RejectsMalformedToken(t *testing.T) {
	svc := New("test-secret")
	now := issuedAt.Add(time.Hour)

	for _, token := range []string{"", "abc", "a:b:c:d", "a:b:c:d:e:f", "pi_123:student-a:tutor-x:notmillis:sig"} {
		err := svc.Verify(token, "pi_123", "student-a", "tutor-x", now)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", token)
	}
}

func TestIssue_RejectsDelimiterInIDs(t *testing.T) {
	svc := New("test-secret")

	_, err := svc.Issue("pi:123", "student-a", "tutor-x", issuedAt)
	assert.ErrorIs(t, err, ErrInvalidField)
}
