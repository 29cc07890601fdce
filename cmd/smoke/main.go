package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

func prettyPrint(body []byte) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendRequest(baseURL, method, path string, body any) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, nil, err
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 120 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(title string, baseURL, method, path string, body any) []byte {
	color.Yellow("\n%s", title)
	resp, respBody, err := sendRequest(baseURL, method, path, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(respBody)
	return respBody
}

func main() {
	baseURL := flag.String("url", "http://localhost:8000", "backend base URL")
	withChat := flag.Bool("chat", false, "also exercise /start-conversation and /chat (calls Dify)")
	flag.Parse()

	color.Cyan("Starting CareerVR API smoke test against %s\n", *baseURL)

	answers := make([]int, 50)
	for i := range answers {
		answers[i] = i%5 + 1
	}
	profile := map[string]any{
		"name":   "Smoke Test",
		"class":  "12A1",
		"school": "THPT Demo",
		"answer": answers,
	}

	step("1. Health", *baseURL, http.MethodGet, "/health", nil)
	step("2. Run RIASEC", *baseURL, http.MethodPost, "/run-riasec", profile)
	step("3. List VR jobs", *baseURL, http.MethodGet, "/api/vr-jobs", nil)

	if !*withChat {
		color.Cyan("\nDone (chat skipped, pass -chat to include it)")
		return
	}

	body := step("4. Start conversation", *baseURL, http.MethodPost, "/start-conversation", profile)
	var started struct {
		ConversationId string `json:"conversation_id"`
	}
	if err := json.Unmarshal(body, &started); err != nil || started.ConversationId == "" {
		color.Red("Skipping chat: no conversation_id returned")
		os.Exit(1)
	}

	step("5. Follow-up chat", *baseURL, http.MethodPost, "/chat", map[string]any{
		"conversation_id": started.ConversationId,
		"message":         "Em nên chuẩn bị gì cho ngành đầu tiên?",
	})

	color.Cyan("\nDone")
}
