package router

import (
	"github.com/notepress/notepress/app/controllers"
	"github.com/notepress/notepress/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Social OAuth. The callback must stay outside the CSRF group
	// because the provider posts back without our token.
	app.Get("/auth/:provider", controllers.HandleOAuthBegin)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)

	app.Post("/logout", middleware.RequireAuth, controllers.HandleLogout)
}
