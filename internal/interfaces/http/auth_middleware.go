package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/epc-inventory-api/internal/application/access"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalPrincipal = "principal"
	LocalWarehouse = "warehouse"
	LocalZone      = "zone"
)

// AuthMiddleware valida el Bearer Token JWT, resuelve el usuario (rol y sucursal actuales)
// y deja el Principal en c.Locals.
func AuthMiddleware(jwtSecret string, identities *access.IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return domain.NewUnauthorized("Unauthorized")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.NewUnauthorized("Unauthorized")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return domain.NewUnauthorized("Unauthorized")
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return &domain.Error{Kind: domain.KindUnauthorized, Message: "Unauthorized", Log: "invalid token: " + err.Error(), Err: err}
		}
		p, err := identities.Resolve(c.UserContext(), userID)
		if err != nil {
			return err
		}
		c.Locals(LocalPrincipal, *p)
		return c.Next()
	}
}

// GetPrincipal devuelve el Principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) (access.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(access.Principal)
	return p, ok
}

// mustPrincipal igual que GetPrincipal pero como error de handler.
func mustPrincipal(c *fiber.Ctx) (access.Principal, error) {
	p, ok := GetPrincipal(c)
	if !ok {
		return access.Principal{}, domain.NewUnauthorized("Unauthorized")
	}
	return p, nil
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string {
	p, _ := GetPrincipal(c)
	return p.UserID
}

// GetCompanyID devuelve el CompanyID del contexto.
func GetCompanyID(c *fiber.Ctx) string {
	p, _ := GetPrincipal(c)
	return p.CompanyID
}
