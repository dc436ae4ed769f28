package router

import (
	"github.com/notepress/notepress/app/controllers"
	"github.com/notepress/notepress/internal/pkg/middleware"
	"github.com/notepress/notepress/internal/pkg/oauth"
	"github.com/notepress/notepress/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	controllers.InitializeNewsController()
	controllers.InitializeNoteController()
	controllers.InitializeCommentController()
	controllers.InitializeAdminNewsController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func loggedInMiddleware(c *fiber.Ctx) error {
	// UserContextMiddleware already set all user context, nothing to add
	return c.Next()
}
