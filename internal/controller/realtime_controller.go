package controller

import (
	"virtual-classroom-be/internal/pkg/logger"
	"virtual-classroom-be/internal/pkg/serverutils"
	"virtual-classroom-be/internal/realtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IRealtimeController interface {
	RegisterRoutes(r fiber.Router)
	ServeWs(ctx *fiber.Ctx) error
}

type realtimeController struct {
	hub    *realtime.Hub
	relay  *realtime.Relay
	logger logger.ILogger
}

func NewRealtimeController(hub *realtime.Hub, relay *realtime.Relay, log logger.ILogger) IRealtimeController {
	return &realtimeController{
		hub:    hub,
		relay:  relay,
		logger: log,
	}
}

func (c *realtimeController) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/classroom", c.ServeWs)
}

// ServeWs authenticates the handshake and upgrades the connection.
// Browsers cannot set headers on WebSocket requests, so the token may
// arrive as a query parameter instead.
func (c *realtimeController) ServeWs(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	identity, err := serverutils.ParseIdentity(tokenStr)
	if err != nil {
		c.logger.Warn("RealtimeController", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	if websocket.IsWebSocketUpgrade(ctx) {
		return websocket.New(func(conn *websocket.Conn) {
			c.logger.Info("RealtimeController", "Starting WebSocket session", map[string]interface{}{"user_id": identity.UserId})
			realtime.ServeWs(c.hub, c.relay, conn, identity)
			c.logger.Info("RealtimeController", "WebSocket session ended", map[string]interface{}{"user_id": identity.UserId})
		})(ctx)
	}
	return fiber.ErrUpgradeRequired
}
