package samplestore

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"sensorhub-server/internal/infra/utils"
	"sensorhub-server/internal/shared_kernel/domain"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const _defaultKeyPrefix = "samples:"

// RedisStore keeps each sensor's samples in a sorted set scored by the
// sample timestamp in milliseconds, so pruning and windowed reads are
// single range commands.
type RedisStore struct {
	client    SampleClient
	keyPrefix string
}

type RedisStoreConfig struct {
	// Addr is the Redis server address (e.g. "localhost:6379")
	Addr     string
	Password string
	DB       int
}

func DefaultRedisStoreConfig() *RedisStoreConfig {
	return &RedisStoreConfig{
		Addr: "localhost:6379",
	}
}

func NewRedisStore(config *RedisStoreConfig) (*RedisStore, error) {
	if config == nil {
		config = DefaultRedisStoreConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	slog.Info("redis sample store initialized",
		slog.String("addr", config.Addr),
		slog.Int("db", config.DB))

	return &RedisStore{client: client, keyPrefix: _defaultKeyPrefix}, nil
}

// NewRedisStoreWithClient builds a store on an existing client; used by
// tests and by callers that manage the connection themselves.
func NewRedisStoreWithClient(client SampleClient) *RedisStore {
	return &RedisStore{client: client, keyPrefix: _defaultKeyPrefix}
}

// storedSample is the msgpack wire form of one sorted-set member. The
// timestamp is part of the member so identical readings at different
// instants remain distinct entries.
type storedSample struct {
	Error       int      `msgpack:"e"`
	Temperature *float64 `msgpack:"t"`
	Humidity    *float64 `msgpack:"h"`
	Pressure    *float64 `msgpack:"p"`
	Timestamp   int64    `msgpack:"ts"`
}

func (s *RedisStore) Append(ctx context.Context, sensorID string, ts time.Time, reading domain.SensorReading) error {
	member, err := msgpack.Marshal(storedSample{
		Error:       reading.Error,
		Temperature: reading.Temperature,
		Humidity:    reading.Humidity,
		Pressure:    reading.Pressure,
		Timestamp:   ts.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("encoding sample: %w", err)
	}

	err = s.client.ZAdd(ctx, s.key(sensorID), redis.Z{
		Score:  float64(ts.UnixMilli()),
		Member: member,
	}).Err()
	if err != nil {
		return fmt.Errorf("appending sample: %w", err)
	}

	return nil
}

func (s *RedisStore) PruneOlderThan(ctx context.Context, sensorID string, cutoff time.Time) error {
	// exclusive max: a sample scored exactly at the cutoff is retained
	max := "(" + strconv.FormatInt(cutoff.UnixMilli(), 10)
	err := s.client.ZRemRangeByScore(ctx, s.key(sensorID), "-inf", max).Err()
	if err != nil {
		return fmt.Errorf("pruning samples: %w", err)
	}

	return nil
}

func (s *RedisStore) RangeSince(ctx context.Context, sensorID string, since, until time.Time) ([]domain.Sample, error) {
	members, err := s.client.ZRangeByScore(ctx, s.key(sensorID), &redis.ZRangeBy{
		Min: strconv.FormatInt(since.UnixMilli(), 10),
		Max: strconv.FormatInt(until.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("ranging samples: %w", err)
	}

	samples := make([]domain.Sample, 0, len(members))
	for _, member := range members {
		var stored storedSample
		if err := msgpack.Unmarshal([]byte(member), &stored); err != nil {
			return nil, fmt.Errorf("decoding sample: %w", err)
		}
		samples = append(samples, stored.toDomain())
	}

	return samples, nil
}

func (s *RedisStore) DeleteAll(ctx context.Context, sensorIDs ...string) error {
	if len(sensorIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(sensorIDs))
	for _, id := range sensorIDs {
		keys = append(keys, s.key(id))
	}

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("deleting sample histories: %w", err)
	}

	return nil
}

func (s *RedisStore) key(sensorID string) string {
	return s.keyPrefix + sensorID
}

func (stored storedSample) toDomain() domain.Sample {
	return domain.Sample{
		SensorReading: domain.SensorReading{
			Error:       stored.Error,
			Temperature: stored.Temperature,
			Humidity:    stored.Humidity,
			Pressure:    stored.Pressure,
		},
		Timestamp: utils.Time{Time: time.UnixMilli(stored.Timestamp).UTC()},
	}
}
