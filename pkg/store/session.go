package store

import (
	"time"

	"careervr-be/pkg/riasec"
)

// Profile is the student metadata sent along with every question.
type Profile struct {
	Name   string `json:"name"`
	Class  string `json:"class"`
	School string `json:"school"`
}

// Message is one transcript entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the conversation state of one completed questionnaire.
type Session struct {
	ID      string            `json:"id"`
	Profile Profile           `json:"profile"`
	Scores  riasec.Scores     `json:"riasec_scores"`
	Top3    []riasec.Category `json:"top_3_types"`
	Top1    riasec.Category   `json:"top_1_type"`
	Answers []int             `json:"answers"`

	// THE TRANSCRIPT (ordered user/assistant turns)
	Messages []Message `json:"messages"`

	// Handle issued by the chat backend; empty until the first reply.
	ExternalConversationID string `json:"external_conversation_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Clone returns a deep copy so callers never share slices with a store.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Scores = make(riasec.Scores, len(s.Scores))
	for k, v := range s.Scores {
		cp.Scores[k] = v
	}
	cp.Top3 = append([]riasec.Category(nil), s.Top3...)
	cp.Answers = append([]int(nil), s.Answers...)
	cp.Messages = append([]Message{}, s.Messages...)
	return &cp
}
