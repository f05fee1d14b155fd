package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"band-booking/internal/infra"
	"band-booking/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "idempotency:booking:"
	// processingTTL bounds how long a crashed attempt blocks its key.
	processingTTL = 2 * time.Minute
)

type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, logger: logger}
}

func (s *RedisStore) TryReserve(ctx context.Context, key, requestHash string) (*commands.IdempotencyRecord, error) {
	payload, err := json.Marshal(commands.IdempotencyRecord{
		Status:      commands.IdempotencyStatusProcessing,
		RequestHash: requestHash,
	})
	if err != nil {
		return nil, err
	}

	ok, err := s.rdb.SetNX(ctx, keyPrefix+key, payload, processingTTL).Result()
	if err != nil {
		return nil, infra.WrapGatewayErr(s.logger, infra.KindUnavailable, "failed to reserve idempotency key", err)
	}
	if ok {
		return nil, nil
	}

	raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET; report it as still in flight
		return &commands.IdempotencyRecord{Status: commands.IdempotencyStatusProcessing, RequestHash: requestHash}, nil
	}
	if err != nil {
		return nil, infra.WrapGatewayErr(s.logger, infra.KindUnavailable, "failed to read idempotency key", err)
	}

	var record commands.IdempotencyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, infra.WrapGatewayErr(s.logger, infra.KindMalformedResponse, "corrupt idempotency record", err)
	}
	return &record, nil
}

func (s *RedisStore) Complete(ctx context.Context, key, requestHash string, confirmation *commands.BookingConfirmation) error {
	payload, err := json.Marshal(commands.IdempotencyRecord{
		Status:       commands.IdempotencyStatusCompleted,
		RequestHash:  requestHash,
		Confirmation: confirmation,
	})
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, keyPrefix+key, payload, s.ttl).Err(); err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindUnavailable, "failed to complete idempotency key", err)
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindUnavailable, "failed to release idempotency key", err)
	}
	return nil
}
