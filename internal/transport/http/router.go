package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aishwaryaxerox/print_shop/internal/handlers"
	authmw "github.com/aishwaryaxerox/print_shop/internal/middleware/auth"
)

type Deps struct {
	AuthHandler   *handlers.AuthHandler
	OrderHandler  *handlers.OrderHandler
	SearchHandler *handlers.SearchHandler
	TokenMW       *authmw.TokenMiddleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", d.AuthHandler.Login)
	auth.GET("/verify", d.AuthHandler.Verify, d.TokenMW.RequireAdmin)

	orders := api.Group("/orders")

	orders.POST("", d.OrderHandler.Create)
	orders.GET("/:orderId", d.OrderHandler.Get)
	orders.PATCH("/:orderId/status", d.OrderHandler.UpdateStatus)

	// Admin-gated surface: listing, search and bulk delete.
	orders.GET("", d.OrderHandler.List, d.TokenMW.RequireAdmin)
	orders.GET("/search", d.SearchHandler.Search, d.TokenMW.RequireAdmin)
	orders.DELETE("/all", d.OrderHandler.DeleteAll, d.TokenMW.RequireAdmin)
}
