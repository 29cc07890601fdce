package llm

import (
	"context"
	"fmt"

	"careervr-be/pkg/riasec"
	"careervr-be/pkg/store"
)

// ChatRequest is everything the chat backend needs for one turn.
type ChatRequest struct {
	Profile store.Profile
	Scores  riasec.Scores
	Top3    []riasec.Category
	Query   string
	// ConversationID continues an existing thread when set.
	ConversationID string
}

type ChatReply struct {
	Answer         string
	ConversationID string
}

// Gateway defines the contract for the external career-guidance chat service.
// One call is one attempt; implementations never retry.
type Gateway interface {
	Send(ctx context.Context, req ChatRequest) (*ChatReply, error)
}

// UnavailableError means the service could not be reached (connection
// failure or timeout).
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("chat gateway unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// UpstreamError carries a non-success response verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chat gateway error: status %d, body: %s", e.StatusCode, e.Body)
}
