package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultTimeout = 10 * time.Second

// Row is one flattened assessment line in the results spreadsheet. Field
// names are the columns the Apps Script expects.
type Row struct {
	Name         string `json:"name"`
	Class        string `json:"class"`
	School       string `json:"school"`
	R            int    `json:"R"`
	I            int    `json:"I"`
	A            int    `json:"A"`
	S            int    `json:"S"`
	E            int    `json:"E"`
	C            int    `json:"C"`
	TopRiasec    string `json:"top_riasec"`
	Recommended  string `json:"nganh_de_xuat"`
	Combinations string `json:"khoi_thi"`
}

// Logger delivers rows to a spreadsheet webhook.
type Logger interface {
	Append(ctx context.Context, row Row) error
}

type WebhookClient struct {
	URL    string
	Client *http.Client
}

var _ Logger = &WebhookClient{}

func NewWebhookClient(url string, timeout time.Duration) *WebhookClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &WebhookClient{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (c *WebhookClient) Append(ctx context.Context, row Row) error {
	if c.URL == "" {
		return fmt.Errorf("sheet webhook url not configured")
	}

	payloadBytes, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sheet error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}
