package router

import (
	"strings"
	"time"

	"github.com/notepress/notepress/app/controllers"
	"github.com/notepress/notepress/internal/pkg/env"
	"github.com/notepress/notepress/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	// Public news pages
	group.Get("/", loggedInMiddleware, controllers.HandleHome)
	group.Get("/news/:id", loggedInMiddleware, controllers.HandleNewsShow)

	// Login
	group.Get("/login", loggedInMiddleware, controllers.HandleLoginPage)
	group.Post("/login", loggedInMiddleware, controllers.HandleLoginPost)

	// Comments on news articles
	group.Post("/news/:id/comments", middleware.RequireAuth, controllers.HandleCommentStore)
	group.Get("/comments/:id/edit", middleware.RequireAuth, controllers.HandleCommentEdit)
	group.Post("/comments/:id/edit", middleware.RequireAuth, controllers.HandleCommentUpdate)
	group.Get("/comments/:id/delete", middleware.RequireAuth, controllers.HandleCommentDeleteConfirm)
	group.Post("/comments/:id/delete", middleware.RequireAuth, controllers.HandleCommentDelete)

	// Private notes
	group.Get("/notes", middleware.RequireAuth, controllers.HandleNoteList)
	group.Get("/notes/add", middleware.RequireAuth, controllers.HandleNoteAdd)
	group.Post("/notes/add", middleware.RequireAuth, controllers.HandleNoteStore)
	group.Get("/notes/:slug", middleware.RequireAuth, controllers.HandleNoteShow)
	group.Get("/notes/:slug/edit", middleware.RequireAuth, controllers.HandleNoteEdit)
	group.Post("/notes/:slug/edit", middleware.RequireAuth, controllers.HandleNoteUpdate)
	group.Get("/notes/:slug/delete", middleware.RequireAuth, controllers.HandleNoteDeleteConfirm)
	group.Post("/notes/:slug/delete", middleware.RequireAuth, controllers.HandleNoteDelete)
}
