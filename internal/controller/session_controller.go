package controller

import (
	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/serverutils"
	"virtual-classroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	Join(ctx *fiber.Ctx) error
	Active(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/active", c.Active)
	h.Post("/start", serverutils.RequireTeacher, c.Start)
	h.Post("/:id/end", serverutils.RequireTeacher, c.End)
	h.Post("/:id/join", c.Join)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartSession(ctx.Context(), identity, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session started", res))
}

func (c *sessionController) End(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid session id")
	}

	res, err := c.service.EndSession(ctx.Context(), identity, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session ended", res))
}

func (c *sessionController) Join(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	sessionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid session id")
	}

	res, err := c.service.JoinSession(ctx.Context(), identity, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Joined session", res))
}

func (c *sessionController) Active(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.ActiveSessions(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Active sessions", res))
}
