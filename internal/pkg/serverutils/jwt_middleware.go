package serverutils

import (
	"os"

	"virtual-classroom-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const IdentityKey = "identity"

// ParseIdentity validates a raw JWT and extracts the authenticated identity
// from its claims. Shared by the HTTP middleware and the WebSocket handshake.
func ParseIdentity(tokenStr string) (*entity.Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	rawId, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(rawId)
	if err != nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	className, _ := claims["class_name"].(string)

	return &entity.Identity{
		UserId:    userId,
		Username:  username,
		Role:      entity.UserRole(role),
		ClassName: className,
	}, nil
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}

	identity, err := ParseIdentity(authHeader[7:])
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	ctx.Locals(IdentityKey, identity)
	return ctx.Next()
}

// IdentityFromCtx returns the identity stored by JwtMiddleware.
func IdentityFromCtx(ctx *fiber.Ctx) *entity.Identity {
	identity, _ := ctx.Locals(IdentityKey).(*entity.Identity)
	return identity
}

// RequireTeacher rejects requests whose identity is not a teacher.
func RequireTeacher(ctx *fiber.Ctx) error {
	identity := IdentityFromCtx(ctx)
	if identity == nil || !identity.IsTeacher() {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Teacher role required"})
	}
	return ctx.Next()
}
