package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"careervr-be/internal/repository/contract"
	"careervr-be/pkg/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "careervr:session:"
	maxRetries = 10
)

// SessionRepository stores each session as one JSON document. Mutations run
// as WATCH/MULTI transactions so concurrent appends to a session never lose
// a turn.
type SessionRepository struct {
	rdb *redis.Client
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(rdb *redis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func key(id string) string {
	return keyPrefix + id
}

func (r *SessionRepository) Create(ctx context.Context, session *store.Session) (string, error) {
	s := session.Clone()
	s.ID = uuid.New().String()
	s.Messages = []store.Message{}
	s.ExternalConversationID = ""
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}
	if err := r.rdb.Set(ctx, key(s.ID), data, 0).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return s.ID, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, error) {
	return load(ctx, r.rdb, id)
}

func (r *SessionRepository) AppendMessages(ctx context.Context, id string, messages ...store.Message) error {
	return r.update(ctx, id, func(s *store.Session) bool {
		s.Messages = append(s.Messages, messages...)
		return true
	})
}

func (r *SessionRepository) SetExternalConversation(ctx context.Context, id, ref string) error {
	return r.update(ctx, id, func(s *store.Session) bool {
		if s.ExternalConversationID != "" {
			return false
		}
		s.ExternalConversationID = ref
		return true
	})
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, g getter, id string) (*store.Session, error) {
	data, err := g.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contract.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var s store.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

// update applies mutate under optimistic locking. mutate returns false when
// there is nothing to write.
func (r *SessionRepository) update(ctx context.Context, id string, mutate func(*store.Session) bool) error {
	k := key(id)
	txf := func(tx *redis.Tx) error {
		s, err := load(ctx, tx, id)
		if err != nil {
			return err
		}
		if !mutate(s) {
			return nil
		}
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, data, redis.KeepTTL)
			return nil
		})
		return err
	}

	for i := 0; i < maxRetries; i++ {
		err := r.rdb.Watch(ctx, txf, k)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("update session %s: too much contention", id)
}
