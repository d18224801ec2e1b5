package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"isoflow-backend/internal/apperr"
)

type AccessClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// RequireJWT guards mutating routes. Requests without a valid Bearer token
// are rejected with 401; the authenticated user id ends up in
// c.Locals("user_id").
func RequireJWT(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return apperr.Unauthorized(c, "Token de acceso requerido.")
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims AccessClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return apperr.Unauthorized(c, "Token inválido o expirado.")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return apperr.Unauthorized(c, "Token inválido o expirado.")
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
