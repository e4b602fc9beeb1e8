package handler

import (
	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/middleware"
	"github.com/fadilmartias/mentor-eval/internal/usecase"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EvaluationHandler struct {
	uc *usecase.EvaluationUsecase
}

func NewEvaluationHandler(uc *usecase.EvaluationUsecase) *EvaluationHandler {
	return &EvaluationHandler{uc: uc}
}

func (h *EvaluationHandler) RegisterRoutes(router fiber.Router) {
	evaluations := router.Group("/evaluations")
	evaluations.Get("/:id", h.Get)
	evaluations.Post("/", middleware.Evaluator(), h.Create)
	evaluations.Patch("/:id", middleware.Evaluator(), h.Update)
	evaluations.Delete("/:id", middleware.Evaluator(), middleware.RequireAdmin(), h.Delete)
}

func (h *EvaluationHandler) Create(c *fiber.Ctx) error {
	var form dto.EvaluationForm
	if err := c.BodyParser(&form); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	evaluator, _ := middleware.EvaluatorFromCtx(c)
	id, err := h.uc.CreateEvaluation(c.UserContext(), form, evaluator)
	if err != nil {
		return util.ErrorFromError(c, "failed to create evaluation", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create evaluation",
		Data:    fiber.Map{"id": id},
	})
}

func (h *EvaluationHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}
	patch, err := parseEvaluationPatch(c.Body())
	if err != nil {
		return util.ErrorFromError(c, "invalid request body", err)
	}

	evaluator, _ := middleware.EvaluatorFromCtx(c)
	if err := h.uc.UpdateEvaluation(c.UserContext(), id, patch, evaluator); err != nil {
		return util.ErrorFromError(c, "failed to update evaluation", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update evaluation",
		Data:    fiber.Map{"id": id},
	})
}

func (h *EvaluationHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}

	evaluator, _ := middleware.EvaluatorFromCtx(c)
	if err := h.uc.DeleteEvaluation(c.UserContext(), id, evaluator); err != nil {
		return util.ErrorFromError(c, "failed to delete evaluation", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete evaluation",
	})
}

func (h *EvaluationHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}
	evaluation, err := h.uc.GetEvaluation(c.UserContext(), id)
	if err != nil {
		return util.ErrorFromError(c, "evaluation not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get evaluation",
		Data:    dto.NewEvaluationDTO(*evaluation),
	})
}
