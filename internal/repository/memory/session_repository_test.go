package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"careervr-be/internal/repository/contract"
	"careervr-be/pkg/riasec"
	"careervr-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *store.Session {
	return &store.Session{
		Profile: store.Profile{Name: "Nguyễn Văn A", Class: "10A1", School: "THPT Ngô Quyền"},
		Scores:  riasec.Scores{riasec.Realistic: 21},
		Top3:    []riasec.Category{riasec.Realistic, riasec.Investigative, riasec.Artistic},
		Top1:    riasec.Realistic,
		Answers: []int{3, 3, 3},
		// ignored by Create
		Messages:               []store.Message{{Role: store.RoleUser, Content: "stale"}},
		ExternalConversationID: "stale",
	}
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	id, err := repo.Create(ctx, newSession())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Empty(t, got.Messages)
	assert.Empty(t, got.ExternalConversationID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "10A1", got.Profile.Class)

	require.NoError(t, repo.AppendMessages(ctx, id, store.Message{Role: store.RoleUser, Content: "Xin chào"}))

	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, store.Message{Role: store.RoleUser, Content: "Xin chào"}, got.Messages[0])
}

func TestSessionRepository_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	a, err := repo.Create(ctx, newSession())
	require.NoError(t, err)
	b, err := repo.Create(ctx, newSession())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, repo.Count())
}

func TestSessionRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)

	err = repo.AppendMessages(ctx, "missing", store.Message{Role: store.RoleUser, Content: "x"})
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)

	err = repo.SetExternalConversation(ctx, "missing", "conv")
	assert.ErrorIs(t, err, contract.ErrSessionNotFound)
}

func TestSessionRepository_ExternalConversationSetOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	id, _ := repo.Create(ctx, newSession())

	require.NoError(t, repo.SetExternalConversation(ctx, id, "first"))
	require.NoError(t, repo.SetExternalConversation(ctx, id, "second"))

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ExternalConversationID)
}

func TestSessionRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	id, _ := repo.Create(ctx, newSession())
	require.NoError(t, repo.AppendMessages(ctx, id, store.Message{Role: store.RoleUser, Content: "a"}))

	got, _ := repo.Get(ctx, id)
	got.Messages[0].Content = "mutated"
	got.Scores[riasec.Realistic] = 0

	again, _ := repo.Get(ctx, id)
	assert.Equal(t, "a", again.Messages[0].Content)
	assert.Equal(t, 21, again.Scores[riasec.Realistic])
}

func TestSessionRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	id, _ := repo.Create(ctx, newSession())

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q := fmt.Sprintf("q%d", i)
			_ = repo.AppendMessages(ctx, id,
				store.Message{Role: store.RoleUser, Content: q},
				store.Message{Role: store.RoleAssistant, Content: q},
			)
		}(i)
	}
	wg.Wait()

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Messages, writers*2)
	// Each call's pair stays adjacent.
	for i := 0; i < len(got.Messages); i += 2 {
		assert.Equal(t, store.RoleUser, got.Messages[i].Role)
		assert.Equal(t, store.RoleAssistant, got.Messages[i+1].Role)
		assert.Equal(t, got.Messages[i].Content, got.Messages[i+1].Content)
	}
}
