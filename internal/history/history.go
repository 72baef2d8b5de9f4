// Package history keeps the per-user diagnosis log: a capped,
// newest-first list persisted as a single serialized blob. The blob is
// rewritten wholesale on every change; a missing or corrupt blob reads
// as an empty history, never as an error.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agrimarket-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MaxEntries is the retention cap: only the most recent entries are kept.
const MaxEntries = 20

// KV is the storage the log writes its blob to. Get returns ("", nil)
// for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

type Log struct {
	kv  KV
	cap int
}

func NewLog(kv KV) *Log {
	return &Log{kv: kv, cap: MaxEntries}
}

func key(userID int32) string {
	return fmt.Sprintf("diagnosis:history:%d", userID)
}

// Add stamps the entry with an id and timestamp, prepends it, truncates
// to the cap, and persists the full list.
func (l *Log) Add(ctx context.Context, userID int32, entry domain.DiagnosisResult) (*domain.DiagnosisResult, error) {
	entries, err := l.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry.ID = uuid.NewString()
	entry.UserID = userID
	entry.CreatedOn = time.Now()

	entries = append([]domain.DiagnosisResult{entry}, entries...)
	if len(entries) > l.cap {
		entries = entries[:l.cap]
	}

	if err := l.persist(ctx, userID, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// List loads the history, newest first. Absence and corruption both
// read as empty.
func (l *Log) List(ctx context.Context, userID int32) ([]domain.DiagnosisResult, error) {
	raw, err := l.kv.Get(ctx, key(userID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var entries []domain.DiagnosisResult
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, nil
	}
	return entries, nil
}

// Remove filters out the entry with the given id and persists the rest.
// An unknown id is a no-op.
func (l *Log) Remove(ctx context.Context, userID int32, id string) error {
	entries, err := l.List(ctx, userID)
	if err != nil {
		return err
	}
	kept := entries[:0:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	if len(kept) == 0 {
		return l.kv.Del(ctx, key(userID))
	}
	return l.persist(ctx, userID, kept)
}

// Clear drops the persisted blob entirely.
func (l *Log) Clear(ctx context.Context, userID int32) error {
	return l.kv.Del(ctx, key(userID))
}

func (l *Log) persist(ctx context.Context, userID int32, entries []domain.DiagnosisResult) error {
	blob, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return l.kv.Set(ctx, key(userID), string(blob))
}

// RedisKV adapts a redis client to the KV interface.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
