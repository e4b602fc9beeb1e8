package handler

import (
	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/middleware"
	"github.com/fadilmartias/mentor-eval/internal/usecase"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/gofiber/fiber/v2"
)

type TemplateHandler struct {
	uc *usecase.CriteriaTemplateUsecase
}

func NewTemplateHandler(uc *usecase.CriteriaTemplateUsecase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

func (h *TemplateHandler) RegisterRoutes(router fiber.Router) {
	templates := router.Group("/criteria-templates")
	templates.Get("/", h.List)
	templates.Get("/:id", h.Get)
	templates.Post("/", middleware.Evaluator(), middleware.RequireAdmin(), h.Create)
	templates.Post("/import", middleware.Evaluator(), middleware.RequireAdmin(), h.Import)
}

func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var input dto.CriteriaTemplateInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	template, err := h.uc.CreateTemplate(c.UserContext(), input)
	if err != nil {
		return util.ErrorFromError(c, "failed to create criteria template", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create criteria template",
		Data:    template,
	})
}

// Import accepts a YAML template file as the raw request body.
func (h *TemplateHandler) Import(c *fiber.Ctx) error {
	created, err := h.uc.ImportTemplates(c.UserContext(), c.Body())
	if err != nil {
		return util.ErrorFromError(c, "failed to import criteria templates", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success import criteria templates",
		Data:    created,
	})
}

func (h *TemplateHandler) List(c *fiber.Ctx) error {
	stage, err := queryStage(c)
	if err != nil {
		return util.ErrorFromError(c, "invalid stage", err)
	}
	templates, err := h.uc.ListTemplates(c.UserContext(), stage, c.QueryBool("active", false))
	if err != nil {
		return util.ErrorFromError(c, "failed to list criteria templates", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get criteria templates",
		Data:    templates,
	})
}

func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}
	template, err := h.uc.GetTemplate(c.UserContext(), id)
	if err != nil {
		return util.ErrorFromError(c, "criteria template not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get criteria template",
		Data:    template,
	})
}
