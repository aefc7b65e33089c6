package controller

import (
	"virtual-classroom-be/internal/pkg/apperror"
	"virtual-classroom-be/internal/pkg/serverutils"
	"virtual-classroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router)
	ClassAnalytics(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
}

func NewAnalyticsController(service service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{service: service}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/analytics/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/class", serverutils.RequireTeacher, c.ClassAnalytics)
}

func (c *analyticsController) ClassAnalytics(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	className := ctx.Query("class_name")
	subject := ctx.Query("subject")
	if className == "" || subject == "" {
		return apperror.NewValidation("class_name and subject are required")
	}

	res, err := c.service.ClassAnalytics(ctx.Context(), identity, className, subject)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Class analytics", res))
}
