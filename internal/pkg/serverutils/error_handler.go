package serverutils

import (
	"errors"

	"careervr-be/internal/pkg/logger"
	"careervr-be/internal/repository/contract"
	"careervr-be/pkg/llm"
	"careervr-be/pkg/riasec"

	"github.com/gofiber/fiber/v2"
)

const MsgConversationNotFound = "Conversation không tồn tại"

// ErrorHandlerMiddleware turns errors returned by handlers into
// {"detail": ...} responses. Upstream chat errors keep their status and body.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		status, detail := Classify(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"path":   ctx.Path(),
				"status": status,
				"error":  err.Error(),
			})
		}
		return Abort(ctx, status, detail)
	}
}

// Classify maps an error onto an HTTP status and user-facing detail.
func Classify(err error) (int, string) {
	var (
		validationErr *ValidationError
		scoreErr      *riasec.ValidationError
		unavailable   *llm.UnavailableError
		upstream      *llm.UpstreamError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Message
	case errors.As(err, &scoreErr):
		if scoreErr.Rule == riasec.RuleLength {
			return fiber.StatusBadRequest, MsgAnswerCount
		}
		return fiber.StatusBadRequest, MsgAnswerRange
	case errors.Is(err, contract.ErrSessionNotFound):
		return fiber.StatusNotFound, MsgConversationNotFound
	case errors.As(err, &unavailable):
		return fiber.StatusInternalServerError, "Lỗi kết nối Dify: " + unavailable.Err.Error()
	case errors.As(err, &upstream):
		return upstream.StatusCode, upstream.Body
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}
