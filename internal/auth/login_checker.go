package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gyminsights/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

// cached sessions are re-read from redis at least this often
const sessionCacheSeconds = 60

// LoginChecker resolves a session token to the acting user. Resolved
// sessions are kept in an in-process cache in front of redis.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	cache       *freecache.Cache
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client, cache *freecache.Cache) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		cache:       cache,
		now:         time.Now,
	}
}

func (lc *LoginChecker) UserID(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.checker.user_id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, cached, err := lc.sessionValue(ctx, token)
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.Bool("cache.hit", cached))

	userID, createdAt, err := parseSessionValue(val)
	if err != nil {
		// a broken value is an unusable session, the store itself is fine
		return "", fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	age := lc.now().Sub(createdAt)
	if age > lc.ttl {
		if cached {
			lc.cache.Del([]byte(token))
		}
		return "", ErrSessionExpired
	}

	if !cached && lc.cache != nil {
		expireSeconds := min(sessionCacheSeconds, int((lc.ttl-age)/time.Second))
		if expireSeconds > 0 {
			// a full cache evicts old entries, the error is only for oversized values
			_ = lc.cache.Set([]byte(token), []byte(val), expireSeconds)
		}
	}

	return userID, nil
}

func (lc *LoginChecker) sessionValue(ctx context.Context, token string) (string, bool, error) {
	if lc.cache != nil {
		if val, err := lc.cache.Get([]byte(token)); err == nil {
			return string(val), true, nil
		}
	}

	val, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, ErrSessionNotFound
		}
		return "", false, fmt.Errorf("get session: %w", err)
	}

	return val, false, nil
}
