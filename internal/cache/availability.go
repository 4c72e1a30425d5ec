package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	domain "github.com/kroppform/salon-scheduler/internal/domain/booking"
)

// Availability is a display-only cache for computed slot views. It is never
// consulted on the reservation commit path, which always re-reads the
// schedule and committed bookings. A nil client disables caching.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	return &Availability{rdb: rdb, ttl: ttl}
}

func NewClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

// All services for one date share a hash key, so one DEL invalidates the
// whole date after a commit or a cancellation.
func dateKey(salonID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", salonID, date)
}

func (a *Availability) Get(ctx context.Context, salonID uint, date string, serviceID uint) ([]domain.TimeSlot, bool) {
	if a == nil || a.rdb == nil {
		return nil, false
	}

	raw, err := a.rdb.HGet(ctx, dateKey(salonID, date), fmt.Sprint(serviceID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("availability cache read failed")
		}
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (a *Availability) Set(ctx context.Context, salonID uint, date string, serviceID uint, slots []domain.TimeSlot) {
	if a == nil || a.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := dateKey(salonID, date)
	pipe := a.rdb.TxPipeline()
	pipe.HSet(ctx, key, fmt.Sprint(serviceID), raw)
	pipe.Expire(ctx, key, a.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Msg("availability cache write failed")
	}
}

func (a *Availability) Invalidate(ctx context.Context, salonID uint, date string) {
	if a == nil || a.rdb == nil {
		return
	}

	if err := a.rdb.Del(ctx, dateKey(salonID, date)).Err(); err != nil {
		log.Warn().Err(err).Msg("availability cache invalidation failed")
	}
}
