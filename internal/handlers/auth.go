package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aishwaryaxerox/print_shop/internal/logging"
	"github.com/aishwaryaxerox/print_shop/internal/service"
	"github.com/aishwaryaxerox/print_shop/internal/transport"
)

type AuthHandler struct {
	Auth *service.AuthService
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	token, user, err := h.Auth.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_error", "status", 401, "reason", "invalid credentials")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Login failed"})
	}

	l.Info("login_success", "username", user.Username)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"user": echo.Map{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// Verify runs behind the admin token middleware, so reaching it means the
// token already checked out.
func (h *AuthHandler) Verify(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"valid": true,
		"user": echo.Map{
			"id":       c.Get("userID"),
			"username": c.Get("username"),
		},
	})
}
