package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthUserKey é a chave de Locals onde o usuário autenticado fica disponível
const AuthUserKey = "auth_user"

// AuthUser é a identidade extraída do token emitido pelo provedor de
// autenticação externo
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RequireAuth valida o Bearer token (HS256) e popula o usuário em Locals.
// Quando role é informado, exige também o papel correspondente.
func RequireAuth(secret, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token ausente"})
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token inválido"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token inválido"})
		}

		user := AuthUser{}
		if sub, ok := claims["sub"].(string); ok {
			user.ID = sub
		}
		if email, ok := claims["email"].(string); ok {
			user.Email = email
		}
		if r, ok := claims["role"].(string); ok {
			user.Role = r
		}

		if role != "" && user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "permissão insuficiente"})
		}

		c.Locals(AuthUserKey, user)
		return c.Next()
	}
}

// CurrentUser retorna o usuário autenticado da requisição, se houver
func CurrentUser(c *fiber.Ctx) (AuthUser, bool) {
	user, ok := c.Locals(AuthUserKey).(AuthUser)
	return user, ok
}
