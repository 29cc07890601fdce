package contract

import (
	"context"
	"errors"

	"careervr-be/pkg/store"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository owns conversation sessions. Implementations serialize
// mutations of a single session; distinct sessions must not block each other.
type SessionRepository interface {
	// Create assigns a fresh id, clears the transcript and thread handle, and stores the session.
	Create(ctx context.Context, session *store.Session) (string, error)
	Get(ctx context.Context, id string) (*store.Session, error)
	AppendMessages(ctx context.Context, id string, messages ...store.Message) error
	// SetExternalConversation records the chat backend handle. Once set it is never replaced.
	SetExternalConversation(ctx context.Context, id, ref string) error
}
