package serverutils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"careervr-be/internal/repository/contract"
	"careervr-be/pkg/llm"
	"careervr-be/pkg/riasec"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type profileRequest struct {
	Name    string `validate:"notblank"`
	Class   string `validate:"notblank"`
	School  string `validate:"notblank"`
	Answers []int  `validate:"len=50,dive,min=1,max=5"`
}

func validProfile() profileRequest {
	a := make([]int, 50)
	for i := range a {
		a[i] = 2
	}
	return profileRequest{Name: "An", Class: "12A", School: "THPT A", Answers: a}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*profileRequest)
		want   string
	}{
		{"valid", func(*profileRequest) {}, ""},
		{"blank class", func(r *profileRequest) { r.Class = "\t " }, MsgProfileRequired},
		{"empty school", func(r *profileRequest) { r.School = "" }, MsgProfileRequired},
		{"short answers", func(r *profileRequest) { r.Answers = r.Answers[:3] }, MsgAnswerCount},
		{"answer too high", func(r *profileRequest) { r.Answers[7] = 6 }, MsgAnswerRange},
		{"answer too low", func(r *profileRequest) { r.Answers[0] = 0 }, MsgAnswerRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProfile()
			tt.mutate(&req)

			err := ValidateRequest(req)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			if assert.True(t, errors.As(err, &vErr)) {
				assert.Equal(t, tt.want, vErr.Message)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"request validation", &ValidationError{Message: MsgAnswerCount}, 400, MsgAnswerCount},
		{"score length", &riasec.ValidationError{Rule: riasec.RuleLength, Value: 3}, 400, MsgAnswerCount},
		{"score range", &riasec.ValidationError{Rule: riasec.RuleRange, Index: 2, Value: 9}, 400, MsgAnswerRange},
		{"not found", fmt.Errorf("chat: %w", contract.ErrSessionNotFound), 404, MsgConversationNotFound},
		{"unavailable", &llm.UnavailableError{Err: errors.New("timeout")}, 500, "Lỗi kết nối Dify: timeout"},
		{"upstream", &llm.UpstreamError{StatusCode: 429, Body: "slow down"}, 429, "slow down"},
		{"fiber", fiber.ErrMethodNotAllowed, 405, "Method Not Allowed"},
		{"unknown", errors.New("disk full"), 500, "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := Classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.detail, detail)
		})
	}
}

func TestNewJwtMiddleware_Open(t *testing.T) {
	app := fiber.New()
	app.Post("/x", NewJwtMiddleware(""), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp, err := app.Test(newRequest(http.MethodPost, "/x", ""))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestNewJwtMiddleware_RejectsBadToken(t *testing.T) {
	app := fiber.New()
	app.Post("/x", NewJwtMiddleware("secret"), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp, err := app.Test(newRequest(http.MethodPost, "/x", "Bearer not.a.token"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func newRequest(method, path, auth string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return req
}
