package serverutils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgProfileRequired = "Tên, lớp, trường không được để trống"
	MsgAnswerCount     = "Phải trả lời đủ 50 câu"
	MsgAnswerRange     = "Các câu trả lời phải từ 1 đến 5"
	MsgInvalidBody     = "Dữ liệu gửi lên không hợp lệ"
)

// ValidationError is a client input failure; Message is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "required" accepts whitespace-only strings.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidateRequest runs the struct tags of req and translates the first
// failure into a ValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	return &ValidationError{Message: translate(vErrs[0])}
}

// translate maps a tag failure onto the user-facing message.
func translate(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		if fe.Field() == "Name" || fe.Field() == "Class" || fe.Field() == "School" {
			return MsgProfileRequired
		}
		return fe.Field() + " không được để trống"
	case "len":
		if fe.Field() == "Answers" {
			return MsgAnswerCount
		}
	case "min", "max":
		if strings.HasPrefix(fe.Field(), "Answers[") {
			return MsgAnswerRange
		}
	}
	return MsgInvalidBody
}
