package controller

import (
	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/serverutils"
	"virtual-classroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IQuizController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Results(ctx *fiber.Ctx) error
	MyResult(ctx *fiber.Ctx) error
}

type quizController struct {
	service service.IQuizService
}

func NewQuizController(service service.IQuizService) IQuizController {
	return &quizController{service: service}
}

func (c *quizController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/quiz/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", serverutils.RequireTeacher, c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/submit", c.Submit)
	h.Put(":id/toggle", serverutils.RequireTeacher, c.Toggle)
	h.Get(":id/results", serverutils.RequireTeacher, c.Results)
	h.Get(":id/result", c.MyResult)
}

func (c *quizController) Create(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.CreateQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateQuiz(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Quiz created", res))
}

func (c *quizController) GetAll(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.ListQuizzes(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Quizzes", res))
}

func (c *quizController) Show(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	quizId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid quiz id")
	}

	res, err := c.service.GetQuiz(ctx.Context(), identity, quizId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Quiz", res))
}

func (c *quizController) Submit(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	quizId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid quiz id")
	}

	var req dto.SubmitQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitQuiz(ctx.Context(), identity, quizId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Quiz submitted", res))
}

func (c *quizController) Toggle(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	quizId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid quiz id")
	}

	var req dto.ToggleQuizRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.service.ToggleQuizActive(ctx.Context(), identity, quizId, req.IsActive); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Quiz updated", nil))
}

func (c *quizController) Results(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	quizId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid quiz id")
	}

	res, err := c.service.QuizResults(ctx.Context(), identity, quizId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Quiz results", res))
}

func (c *quizController) MyResult(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	quizId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid quiz id")
	}

	res, err := c.service.MyResult(ctx.Context(), identity, quizId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Quiz result", res))
}
