package controller

import (
	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/serverutils"
	"virtual-classroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssignmentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Grade(ctx *fiber.Ctx) error
	Submissions(ctx *fiber.Ctx) error
	MySubmission(ctx *fiber.Ctx) error
}

type assignmentController struct {
	service service.IAssignmentService
}

func NewAssignmentController(service service.IAssignmentService) IAssignmentController {
	return &assignmentController{service: service}
}

func (c *assignmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assignment/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", serverutils.RequireTeacher, c.Create)
	h.Get(":id/submissions", serverutils.RequireTeacher, c.Submissions)
	h.Post(":id/submit", c.Submit)
	h.Get(":id/submission", c.MySubmission)
	h.Put("/submissions/:id/grade", serverutils.RequireTeacher, c.Grade)
}

func (c *assignmentController) Create(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.CreateAssignmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateAssignment(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Assignment created", res))
}

func (c *assignmentController) GetAll(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.ListAssignments(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Assignments", res))
}

func (c *assignmentController) Submit(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	assignmentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid assignment id")
	}

	var req dto.SubmitAssignmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitAssignment(ctx.Context(), identity, assignmentId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Assignment submitted", res))
}

func (c *assignmentController) Grade(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	submissionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid submission id")
	}

	var req dto.GradeSubmissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GradeSubmission(ctx.Context(), identity, submissionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Submission graded", res))
}

func (c *assignmentController) Submissions(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	assignmentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid assignment id")
	}

	res, err := c.service.ListSubmissions(ctx.Context(), identity, assignmentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Submissions", res))
}

func (c *assignmentController) MySubmission(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	assignmentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid assignment id")
	}

	res, err := c.service.MySubmission(ctx.Context(), identity, assignmentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Submission", res))
}
