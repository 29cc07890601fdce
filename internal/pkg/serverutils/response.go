package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the error envelope of every endpoint: {"detail": "..."}.
type ErrorBody struct {
	Detail string `json:"detail"`
}

func ErrorResponse(detail string) ErrorBody {
	return ErrorBody{Detail: detail}
}

// StatusResponse is the acknowledgement returned by write endpoints.
type StatusResponse struct {
	Status string `json:"status"`
	Count  *int   `json:"count,omitempty"`
}

func SuccessStatus() StatusResponse {
	return StatusResponse{Status: "success"}
}

func SuccessCount(count int) StatusResponse {
	return StatusResponse{Status: "success", Count: &count}
}

// Abort writes an error body with the given status.
func Abort(ctx *fiber.Ctx, status int, detail string) error {
	return ctx.Status(status).JSON(ErrorResponse(detail))
}
