package rest

import (
	"net/http"

	"github.com/cyltest/api/domain"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware))
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		// auth routes
		apiV1.POST("/auth/login", h.echoHandler(h.Login))
		apiV1.POST("/auth/logout", h.echoHandler(h.Logout), echo.WrapMiddleware(h.GetAuthMiddleware("")))
		apiV1.PUT("/auth/password", h.echoHandler(h.ChangePassword), echo.WrapMiddleware(h.GetAuthMiddleware("")))

		// user routes
		apiV1.POST("/users", h.echoHandler(h.CreateUser), echo.WrapMiddleware(h.GetAuthMiddleware(domain.AdminRole)))
		apiV1.GET("/users", h.echoHandler(h.ListUsers), echo.WrapMiddleware(h.GetAuthMiddleware(domain.AdminRole)))

		// settings routes
		apiV1.PUT("/settings", h.echoHandler(h.UpdateSetting), echo.WrapMiddleware(h.GetAuthMiddleware(domain.AdminRole)))
		apiV1.GET("/settings", h.echoHandler(h.ListSettings), echo.WrapMiddleware(h.GetAuthMiddleware("")))

		// audit trail routes, admin only
		apiV1.GET("/audit/logs", h.echoHandler(h.QueryAuditLogs), echo.WrapMiddleware(h.GetAuthMiddleware(domain.AdminRole)))
		apiV1.GET("/audit/logs/email", h.echoHandler(h.QueryEmailLogs), echo.WrapMiddleware(h.GetAuthMiddleware(domain.AdminRole)))
		apiV1.GET("/audit/logs/system", h.echoHandler(h.QuerySystemLogs), echo.WrapMiddleware(h.GetAuthMiddleware(domain.AdminRole)))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}
