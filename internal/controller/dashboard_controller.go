package controller

import (
	"virtual-classroom-be/internal/pkg/serverutils"
	"virtual-classroom-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Dashboard)
}

func (c *dashboardController) Dashboard(ctx *fiber.Ctx) error {
	identity := serverutils.IdentityFromCtx(ctx)

	res, err := c.service.Dashboard(ctx.Context(), identity)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}
