package alertservice

import (
	"context"
	"strconv"
	"strings"
	"time"

	"labtrack/models"
	"labtrack/providers"
)

// Dismissals live in one sorted set scored by their expiry (unix seconds),
// so each trigger instance ages out on its own.
const (
	dismissedKey = "labtrack:alerts:dismissed"
	dismissalTTL = 400 * 24 * time.Hour
)

// DismissalStore remembers dismissed trigger instances across evaluations.
type DismissalStore interface {
	Remember(ctx context.Context, key DismissalKey) error
	Dismissed(ctx context.Context) (map[DismissalKey]struct{}, error)
}

type redisDismissalStore struct {
	redis providers.RedisProvider
	now   func() time.Time
}

func NewRedisDismissalStore(redis providers.RedisProvider) DismissalStore {
	return &redisDismissalStore{redis: redis, now: time.Now}
}

func unixScore(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// Remember stores the key with a fresh expiry and trims entries that have
// already expired.
func (s *redisDismissalStore) Remember(ctx context.Context, key DismissalKey) error {
	now := s.now()
	if err := s.redis.ZAdd(ctx, dismissedKey, float64(now.Add(dismissalTTL).Unix()), key.String()); err != nil {
		return err
	}
	return s.redis.ZRemRangeByScore(ctx, dismissedKey, "-inf", unixScore(now))
}

func (s *redisDismissalStore) Dismissed(ctx context.Context) (map[DismissalKey]struct{}, error) {
	members, err := s.redis.ZRangeByScore(ctx, dismissedKey, "("+unixScore(s.now()), "+inf")
	if err != nil {
		return nil, err
	}
	out := make(map[DismissalKey]struct{}, len(members))
	for _, m := range members {
		if key, ok := ParseDismissalKey(m); ok {
			out[key] = struct{}{}
		}
	}
	return out, nil
}

// ParseDismissalKey is the inverse of DismissalKey.String.
func ParseDismissalKey(s string) (DismissalKey, bool) {
	parts := strings.SplitN(s, "|", 3)
	if len(parts) != 3 || parts[0] == "" {
		return DismissalKey{}, false
	}
	kind := models.AlertType(parts[1])
	if !kind.Valid() {
		return DismissalKey{}, false
	}
	return DismissalKey{EquipmentID: parts[0], Type: kind, DueDate: parts[2]}, true
}
