package controller

import (
	"careervr-be/internal/dto"
	"careervr-be/internal/pkg/serverutils"
	"careervr-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router, adminGuard fiber.Handler)
	GetJobs(ctx *fiber.Ctx) error
	ReplaceJobs(ctx *fiber.Ctx) error
	GetSubmissions(ctx *fiber.Ctx) error
	AddSubmission(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router, adminGuard fiber.Handler) {
	r.Get("/vr-jobs", c.GetJobs)
	r.Post("/vr-jobs", adminGuard, c.ReplaceJobs)
	r.Get("/submissions", c.GetSubmissions)
	r.Post("/submissions", c.AddSubmission)
}

func (c *catalogController) GetJobs(ctx *fiber.Ctx) error {
	res, err := c.service.ListJobs(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *catalogController) ReplaceJobs(ctx *fiber.Ctx) error {
	var jobs []dto.VRJob
	if err := parseBody(ctx, &jobs); err != nil {
		return err
	}

	for _, job := range jobs {
		if err := serverutils.ValidateRequest(job); err != nil {
			return err
		}
	}

	count, err := c.service.ReplaceJobs(ctx.UserContext(), jobs)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessCount(count))
}

func (c *catalogController) GetSubmissions(ctx *fiber.Ctx) error {
	res, err := c.service.ListSubmissions(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *catalogController) AddSubmission(ctx *fiber.Ctx) error {
	var req dto.Submission
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.AddSubmission(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessStatus())
}
