package loyalty

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Ledger is the loyalty-points ledger consumed by the booking core.
type Ledger interface {
	GetBalance(ctx context.Context, customerID string) (int, error)
	ApplyRedemption(ctx context.Context, customerID string, points int) error
}

const balanceKeyPrefix = "loyalty:balance:"

// RedisLedger keeps loyalty balances in Redis, one key per customer.
type RedisLedger struct {
	Client *redis.Client
}

// NewRedisLedger constructs a ledger backed by the given Redis client.
func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{Client: client}
}

// GetBalance returns the customer's current point balance. A missing key is
// a zero balance, not an error.
func (l *RedisLedger) GetBalance(ctx context.Context, customerID string) (int, error) {
	balance, err := l.Client.Get(ctx, balanceKeyPrefix+customerID).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error fetching loyalty balance for %s: %w", customerID, err)
	}
	return balance, nil
}

// ApplyRedemption deducts redeemed points from the customer's balance.
func (l *RedisLedger) ApplyRedemption(ctx context.Context, customerID string, points int) error {
	if points <= 0 {
		return nil
	}
	balance, err := l.Client.DecrBy(ctx, balanceKeyPrefix+customerID, int64(points)).Result()
	if err != nil {
		return fmt.Errorf("error redeeming %d points for %s: %w", points, customerID, err)
	}
	if balance < 0 {
		// Roll the balance back up rather than leaving it negative.
		if err := l.Client.IncrBy(ctx, balanceKeyPrefix+customerID, int64(points)).Err(); err != nil {
			return fmt.Errorf("error restoring loyalty balance for %s: %w", customerID, err)
		}
		return fmt.Errorf("insufficient loyalty balance for %s", customerID)
	}
	return nil
}

// Award credits earned points, e.g. after a completed visit.
func (l *RedisLedger) Award(ctx context.Context, customerID string, points int) error {
	if points <= 0 {
		return nil
	}
	if err := l.Client.IncrBy(ctx, balanceKeyPrefix+customerID, int64(points)).Err(); err != nil {
		return fmt.Errorf("error awarding %d points to %s: %w", points, customerID, err)
	}
	return nil
}
