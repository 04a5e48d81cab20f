package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/settlement-admin/internal/application/dto"
	"github.com/jhoicas/settlement-admin/internal/application/ports"
	"github.com/jhoicas/settlement-admin/internal/application/session"
	"github.com/jhoicas/settlement-admin/internal/domain"
	"github.com/jhoicas/settlement-admin/pkg/jwt"
)

// Locals keys.
const (
	LocalWorkspace = "workspace"
	LocalToken     = "token"
)

// AuthMiddleware exige Bearer y carga en c.Locals el Workspace abierto en el login con ese mismo token.
// Los claims se decodifican sin verificar firma solo para detectar un exp vencido; nunca eligen el Workspace.
func AuthMiddleware(sessions *session.Manager, now func() time.Time) fiber.Handler {
	if now == nil {
		now = time.Now
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		token := strings.TrimSpace(parts[1])
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Decode(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}
		if claims.Expired(now()) {
			sessions.Expire(token)
			return sessionExpired(c)
		}

		ws, err := sessions.Lookup(token)
		if err != nil {
			return sessionExpired(c)
		}
		ctx := ports.WithToken(c.UserContext(), token)
		c.SetUserContext(ctx)
		c.Locals(LocalToken, token)
		c.Locals(LocalWorkspace, ws)
		return c.Next()
	}
}

func sessionExpired(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "세션이 만료되었습니다. 다시 로그인해 주세요."})
}

// GetWorkspace devuelve el Workspace cargado por AuthMiddleware.
func GetWorkspace(c *fiber.Ctx) *session.Workspace {
	ws, _ := c.Locals(LocalWorkspace).(*session.Workspace)
	return ws
}

func requireWorkspace(c *fiber.Ctx) (*session.Workspace, error) {
	ws := GetWorkspace(c)
	if ws == nil {
		return nil, domain.ErrNoSession
	}
	return ws, nil
}
