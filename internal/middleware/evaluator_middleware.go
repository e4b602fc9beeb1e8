package middleware

import (
	"strings"

	"github.com/fadilmartias/mentor-eval/internal/model"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	HeaderEvaluatorID   = "X-Evaluator-Id"
	HeaderEvaluatorName = "X-Evaluator-Name"
	HeaderEvaluatorRole = "X-Evaluator-Role"

	evaluatorKey = "evaluator"
)

// Evaluator reads the acting evaluator from the request headers and stores it
// for EvaluatorFromCtx. Requests without an evaluator id get 401.
func Evaluator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderEvaluatorID))
		if id == "" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "evaluator is required",
			})
		}

		role := strings.ToLower(strings.TrimSpace(c.Get(HeaderEvaluatorRole)))
		if role == "" {
			role = model.RoleMentor
		}
		c.Locals(evaluatorKey, model.Evaluator{
			ID:   id,
			Name: strings.TrimSpace(c.Get(HeaderEvaluatorName)),
			Role: role,
		})
		return c.Next()
	}
}

// RequireAdmin rejects evaluators without the admin role with 403. It must run
// after Evaluator.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		evaluator, ok := EvaluatorFromCtx(c)
		if !ok {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "evaluator is required",
			})
		}
		if !evaluator.IsAdmin() {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "admin role required",
			})
		}
		return c.Next()
	}
}

func EvaluatorFromCtx(c *fiber.Ctx) (model.Evaluator, bool) {
	evaluator, ok := c.Locals(evaluatorKey).(model.Evaluator)
	return evaluator, ok
}
