package redisstore

import (
	"context"
	"os"
	"sync"
	"testing"

	"careervr-be/internal/repository/contract"
	"careervr-be/pkg/riasec"
	"careervr-be/pkg/store"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*SessionRepository, *redis.Client) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_TEST_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, rdb.Ping(context.Background()).Err())
	return NewSessionRepository(rdb), rdb
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo, rdb := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &store.Session{
		Profile:  store.Profile{Name: "An", Class: "12A1", School: "THPT A"},
		Scores:   riasec.Scores{riasec.Realistic: 10},
		Top3:     []riasec.Category{riasec.Realistic, riasec.Investigative, riasec.Artistic},
		Top1:     riasec.Realistic,
		Messages: []store.Message{{Role: store.RoleUser, Content: "dropped"}},
	})
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Del(context.Background(), key(id)) })

	s, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Empty(t, s.Messages)
	assert.Equal(t, 10, s.Scores[riasec.Realistic])

	require.NoError(t, repo.AppendMessages(ctx, id,
		store.Message{Role: store.RoleUser, Content: "hỏi"},
		store.Message{Role: store.RoleAssistant, Content: "đáp"},
	))
	require.NoError(t, repo.SetExternalConversation(ctx, id, "conv-1"))
	require.NoError(t, repo.SetExternalConversation(ctx, id, "conv-2"))

	s, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, s.Messages, 2)
	assert.Equal(t, "conv-1", s.ExternalConversationID)
}

func TestSessionRepository_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)
	assert.ErrorIs(t, repo.AppendMessages(ctx, "missing", store.Message{}), contract.ErrSessionNotFound)
}

func TestSessionRepository_ConcurrentAppends(t *testing.T) {
	repo, rdb := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &store.Session{})
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Del(context.Background(), key(id)) })

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.AppendMessages(ctx, id,
				store.Message{Role: store.RoleUser, Content: "q"},
				store.Message{Role: store.RoleAssistant, Content: "a"},
			))
		}()
	}
	wg.Wait()

	s, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, s.Messages, 10)
	for i := 0; i < len(s.Messages); i += 2 {
		assert.Equal(t, store.RoleUser, s.Messages[i].Role)
		assert.Equal(t, store.RoleAssistant, s.Messages[i+1].Role)
	}
}
