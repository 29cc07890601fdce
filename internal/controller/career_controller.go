package controller

import (
	"careervr-be/internal/constant"
	"careervr-be/internal/dto"
	"careervr-be/internal/pkg/serverutils"
	"careervr-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICareerController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	StartConversation(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	RunRiasec(ctx *fiber.Ctx) error
}

type careerController struct {
	service service.ICareerService
}

func NewCareerController(service service.ICareerService) ICareerController {
	return &careerController{service: service}
}

func (c *careerController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Post("/start-conversation", c.StartConversation)
	r.Post("/chat", c.Chat)
	r.Post("/run-riasec", c.RunRiasec)
}

func (c *careerController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Status: "ok", Message: constant.HealthMessage})
}

func (c *careerController) StartConversation(ctx *fiber.Ctx) error {
	var req dto.StartConversationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartConversation(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *careerController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *careerController) RunRiasec(ctx *fiber.Ctx) error {
	var req dto.RiasecRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RunRiasec(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

// parseBody reports malformed JSON (wrong types included) as a validation failure.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return &serverutils.ValidationError{Message: serverutils.MsgInvalidBody}
	}
	return nil
}
