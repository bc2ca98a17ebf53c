package hold

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReservationHold is a short-lived hold on a concrete slot sub-range,
// acquired before the payment intent is created so two students cannot pay
// for the same range at once. Holds expire on their own; confirmation
// releases them early.
type ReservationHold struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection.
func New(addr string) (*ReservationHold, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("hold: ping redis at %s: %w", addr, err)
	}

	return &ReservationHold{client: client}, nil
}

// Key builds the hold key for a slot sub-range.
func Key(tutorID string, dayOfWeek, startMinutes, endMinutes int) string {
	return fmt.Sprintf("%s:%d:%d-%d", tutorID, dayOfWeek, startMinutes, endMinutes)
}

// Acquire takes the hold if nobody else has it. Returns false when the
// range is already held.
func (h *ReservationHold) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := h.client.SetNX(ctx, "hold:"+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: acquire %s: %v", ErrUnavailable, key, err)
	}
	return ok, nil
}

// Release drops the hold. Safe to call for an already-expired hold.
func (h *ReservationHold) Release(ctx context.Context, key string) error {
	if err := h.client.Del(ctx, "hold:"+key).Err(); err != nil {
		return fmt.Errorf("%w: release %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

func (h *ReservationHold) Close() error {
	return h.client.Close()
}
