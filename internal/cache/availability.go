package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability guarda a resposta de disponibilidade de um dia em Redis.
// A entrada é invalidada sempre que uma reserva do dia é criada ou
// removida. Sem REDIS_ADDR configurado o cache vira no-op (ponteiro nil).
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(addr string) *Availability {
	if addr == "" {
		return nil
	}

	return &Availability{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 2 * time.Minute,
	}
}

func key(barbershopID string, day time.Time) string {
	return fmt.Sprintf("availability:%s:%s", barbershopID, day.Format("2006-01-02"))
}

func (c *Availability) Get(ctx context.Context, barbershopID string, day time.Time) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(barbershopID, day)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(ctx context.Context, barbershopID string, day time.Time, slots []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key(barbershopID, day), raw, c.ttl)
}

func (c *Availability) InvalidateDay(ctx context.Context, barbershopID string, day time.Time) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, key(barbershopID, day))
}
