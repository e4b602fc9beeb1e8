package handler

import (
	"github.com/fadilmartias/mentor-eval/internal/dto"
	"github.com/fadilmartias/mentor-eval/internal/response"
	"github.com/fadilmartias/mentor-eval/internal/usecase"
	"github.com/fadilmartias/mentor-eval/internal/util"
	"github.com/gofiber/fiber/v2"
)

// UserHandler serves user profiles, their evaluations and summaries, and job
// postings.
type UserHandler struct {
	users       *usecase.UserUsecase
	evaluations *usecase.EvaluationUsecase
	summaries   *usecase.SummaryUsecase
}

func NewUserHandler(users *usecase.UserUsecase, evaluations *usecase.EvaluationUsecase, summaries *usecase.SummaryUsecase) *UserHandler {
	return &UserHandler{users: users, evaluations: evaluations, summaries: summaries}
}

func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Post("/", h.CreateUser)
	users.Get("/:id", h.GetUser)
	users.Get("/:id/evaluations", h.GetUserEvaluations)
	users.Get("/:id/evaluation-summary", h.GetSummary)

	jobs := router.Group("/job-postings")
	jobs.Post("/", h.CreateJobPosting)
	jobs.Get("/", h.ListJobPostings)
	jobs.Get("/:id", h.GetJobPosting)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input dto.UserInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	user, err := h.users.CreateUser(c.UserContext(), input)
	if err != nil {
		return util.ErrorFromError(c, "failed to create user", err)
	}
	data, err := dto.NewUserDTO(*user)
	if err != nil {
		return util.ErrorFromError(c, "failed to read user", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create user",
		Data:    data,
	})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}
	user, err := h.users.GetUser(c.UserContext(), id)
	if err != nil {
		return util.ErrorFromError(c, "user not found", err)
	}
	data, err := dto.NewUserDTO(*user)
	if err != nil {
		return util.ErrorFromError(c, "failed to read user", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get user",
		Data:    data,
	})
}

// GetUserEvaluations lists a user's evaluations, most recent first. Without
// page_size every evaluation is returned and no pagination is attached.
func (h *UserHandler) GetUserEvaluations(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}
	stage, err := queryStage(c)
	if err != nil {
		return util.ErrorFromError(c, "invalid stage", err)
	}
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 0)

	evaluations, total, err := h.evaluations.GetUserEvaluations(c.UserContext(), id, stage, page, pageSize)
	if err != nil {
		return util.ErrorFromError(c, "failed to get evaluations", err)
	}

	res := util.SuccessResponseFormat{
		Message: "Success get evaluations",
		Data:    dto.NewEvaluationDTOs(evaluations),
	}
	if pageSize > 0 {
		res.Pagination = response.NewPagination(page, pageSize, total)
	}
	return util.SuccessResponse(c, res)
}

func (h *UserHandler) GetSummary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}
	record, err := h.summaries.GetSummary(c.UserContext(), id)
	if err != nil {
		return util.ErrorFromError(c, "evaluation summary not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get evaluation summary",
		Data:    dto.NewEvaluationSummaryDTO(*record),
	})
}

func (h *UserHandler) CreateJobPosting(c *fiber.Ctx) error {
	var input dto.JobPostingInput
	if err := c.BodyParser(&input); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	job, err := h.users.CreateJobPosting(c.UserContext(), input)
	if err != nil {
		return util.ErrorFromError(c, "failed to create job posting", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create job posting",
		Data:    job,
	})
}

func (h *UserHandler) ListJobPostings(c *fiber.Ctx) error {
	jobs, err := h.users.ListJobPostings(c.UserContext())
	if err != nil {
		return util.ErrorFromError(c, "failed to list job postings", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job postings",
		Data:    jobs,
	})
}

func (h *UserHandler) GetJobPosting(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return util.ErrorFromError(c, "invalid id", err)
	}
	job, err := h.users.GetJobPosting(c.UserContext(), id)
	if err != nil {
		return util.ErrorFromError(c, "job posting not found", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job posting",
		Data:    job,
	})
}
