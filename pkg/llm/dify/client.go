package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"careervr-be/pkg/llm"
	"careervr-be/pkg/riasec"
)

const (
	DefaultChatURL = "https://api.dify.ai/v1/chat-messages"
	DefaultTimeout = 90 * time.Second

	responseModeBlocking = "blocking"
	anonymousUser        = "student"
)

type Client struct {
	ChatURL string
	APIKey  string
	Client  *http.Client
}

// Ensure Client implements Gateway
var _ llm.Gateway = &Client{}

func NewClient(chatURL, apiKey string, timeout time.Duration) *Client {
	if chatURL == "" {
		chatURL = DefaultChatURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		ChatURL: chatURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Wire format ---

type Inputs struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	School       string `json:"school"`
	Answer       string `json:"answer"`
	RiasecScores string `json:"riasec_scores"`
	Top3Types    string `json:"top_3_types"`
}

type ChatMessageRequest struct {
	Inputs         Inputs `json:"inputs"`
	Query          string `json:"query"`
	ResponseMode   string `json:"response_mode"`
	ConversationID string `json:"conversation_id,omitempty"`
	User           string `json:"user"`
}

type ChatMessageResponse struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id"`
	MessageID      string `json:"message_id,omitempty"`
}

// BuildPayload maps a gateway request onto the chat-messages body. The
// workflow reads the scores from both "answer" and "riasec_scores", each a
// JSON string that also carries the dash-joined profile as "riasec_type".
func BuildPayload(req llm.ChatRequest) ChatMessageRequest {
	scores := string(req.Scores.JSONWith("riasec_type", riasec.Join(req.Top3, "-")))

	user := strings.TrimSpace(req.Profile.Name)
	if user == "" {
		user = anonymousUser
	}

	return ChatMessageRequest{
		Inputs: Inputs{
			Name:         req.Profile.Name,
			Class:        req.Profile.Class,
			School:       req.Profile.School,
			Answer:       scores,
			RiasecScores: scores,
			Top3Types:    riasec.Join(req.Top3, ","),
		},
		Query:          req.Query,
		ResponseMode:   responseModeBlocking,
		ConversationID: req.ConversationID,
		User:           user,
	}
}

func (c *Client) Send(ctx context.Context, req llm.ChatRequest) (*llm.ChatReply, error) {
	payloadBytes, err := json.Marshal(BuildPayload(req))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.ChatURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return nil, &llm.UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &llm.UnavailableError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &llm.UpstreamError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var chatResp ChatMessageResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &llm.ChatReply{
		Answer:         chatResp.Answer,
		ConversationID: chatResp.ConversationID,
	}, nil
}
