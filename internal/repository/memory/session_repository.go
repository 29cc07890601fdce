package memory

import (
	"context"
	"sync"
	"time"

	"careervr-be/internal/repository/contract"
	"careervr-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type sessionEntry struct {
	mu      sync.Mutex
	session *store.Session
}

// SessionRepository keeps sessions for the lifetime of the process.
type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	// Sessions never expire, so the janitor is disabled as well.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *store.Session) (string, error) {
	s := session.Clone()
	s.ID = uuid.New().String()
	s.Messages = []store.Message{}
	s.ExternalConversationID = ""
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	r.cache.Set(s.ID, &sessionEntry{session: s}, cache.NoExpiration)
	return s.ID, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*store.Session, error) {
	e, err := r.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Clone(), nil
}

func (r *SessionRepository) AppendMessages(ctx context.Context, id string, messages ...store.Message) error {
	e, err := r.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Messages = append(e.session.Messages, messages...)
	return nil
}

func (r *SessionRepository) SetExternalConversation(ctx context.Context, id, ref string) error {
	e, err := r.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session.ExternalConversationID == "" {
		e.session.ExternalConversationID = ref
	}
	return nil
}

// Count reports the number of stored sessions.
func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

func (r *SessionRepository) entry(id string) (*sessionEntry, error) {
	if x, found := r.cache.Get(id); found {
		return x.(*sessionEntry), nil
	}
	return nil, contract.ErrSessionNotFound
}
