package main

import (
	"walletboard/internal/handlers"
	"walletboard/internal/middleware"
	"walletboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routeHandlers struct {
	health     *handlers.HealthCheckHandler
	walletAuth *handlers.WalletAuthHandler
	posts      *handlers.PostHandler
	profiles   *handlers.ProfileHandler
}

func registerRoutes(e *echo.Echo, h routeHandlers, tokenService services.TokenServiceInterface) {
	requireAuth := middleware.RequireAuth(tokenService)
	optionalAuth := middleware.OptionalAuth(tokenService)

	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/get-nonce", h.walletAuth.GetNonce)
	e.POST("/wallet-login", h.walletAuth.WalletLogin)

	e.GET("/posts", h.posts.ListPosts, optionalAuth)
	e.POST("/posts", h.posts.CreatePost, requireAuth)
	e.POST("/posts/:id/like", h.posts.ToggleLike, requireAuth)

	e.GET("/profiles/me", h.profiles.GetMe, requireAuth)
	e.PATCH("/profiles/me", h.profiles.UpdateMe, requireAuth)
	e.GET("/profiles/me/activity", h.profiles.GetMyActivity, requireAuth)
	e.GET("/profiles/:username", h.profiles.GetProfile, optionalAuth)

	e.GET("/ranking", h.profiles.GetRanking)
}
