package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rawasi_matching/internal/domain/entities"
	"rawasi_matching/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix  = "rawasi:session:" // rawasi:session:{session_id}
	defaultSessionTTL = 72 * time.Hour
)

// SessionRedisRepository keeps owner sessions in Redis as JSON documents.
// Every save refreshes the TTL, so idle sessions expire on their own.
type SessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionRepository = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(client *redis.Client, ttl time.Duration) *SessionRedisRepository {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionRedisRepository{client: client, ttl: ttl}
}

func (r *SessionRedisRepository) Save(ctx context.Context, s entities.Session) (entities.Session, error) {
	s.Compare = nonNil(s.Compare)
	data, err := json.Marshal(s)
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return entities.Session{}, fmt.Errorf("failed to save session: %w", err)
	}
	return s, nil
}

func (r *SessionRedisRepository) Get(ctx context.Context, id string) (entities.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	var s entities.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	s.Compare = nonNil(s.Compare)
	s.Draft.TechNeeds = nonNil(s.Draft.TechNeeds)
	return s, nil
}

func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
