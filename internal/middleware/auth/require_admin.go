package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aishwaryaxerox/print_shop/internal/service"
)

type TokenMiddleware struct {
	Auth *service.AuthService
}

// RequireAdmin gates a route behind a valid bearer token. The verified
// identity is stored on the echo context as "userID" and "username".
func (m *TokenMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No token provided"})
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token format"})
		}

		identity, err := m.Auth.Verify(parts[1])
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
		}

		c.Set("userID", identity.ID)
		c.Set("username", identity.Username)
		return next(c)
	}
}
