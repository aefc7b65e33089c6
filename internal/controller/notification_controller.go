package controller

import (
	"strconv"

	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/serverutils"
	"virtual-classroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router)
	Unread(ctx *fiber.Ctx) error
	UnreadCount(ctx *fiber.Ctx) error
	MarkAsRead(ctx *fiber.Ctx) error
}

type notificationController struct {
	service service.INotificationService
}

func NewNotificationController(service service.INotificationService) INotificationController {
	return &notificationController{service: service}
}

func (c *notificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notification/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/unread", c.Unread)
	h.Get("/unread/count", c.UnreadCount)
	h.Put(":id/read", c.MarkAsRead)
}

func (c *notificationController) Unread(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))

	res, err := c.service.Unread(ctx.Context(), identity, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Unread notifications", res))
}

func (c *notificationController) UnreadCount(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	count, err := c.service.UnreadCount(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Unread count", fiber.Map{"count": count}))
}

func (c *notificationController) MarkAsRead(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	notificationId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewValidation("invalid notification id")
	}

	if err := c.service.MarkAsRead(ctx.Context(), identity, notificationId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}
