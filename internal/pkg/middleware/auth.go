package middleware

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/notepress/notepress/internal/pkg/usercontext"
)

// LoginRedirect builds the login URL carrying the originally requested
// location, so the user lands back where they started after signing in.
func LoginRedirect(c *fiber.Ctx) string {
	return "/login?next=" + url.QueryEscape(c.OriginalURL())
}

// RequireAuth ensures a logged-in web session; redirects to the login
// page with a ?next= return target if missing.
func RequireAuth(c *fiber.Ctx) error {
	v := c.Locals(usercontext.KeyFromProtected)
	loggedIn := false
	if b, ok := v.(bool); ok {
		loggedIn = b
	}
	if !loggedIn {
		return c.Redirect(LoginRedirect(c), fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAdmin ensures a logged-in admin; redirects otherwise.
func RequireAdmin(c *fiber.Ctx) error {
	v := c.Locals(usercontext.KeyFromProtected)
	loggedIn := false
	if b, ok := v.(bool); ok {
		loggedIn = b
	}
	if !loggedIn {
		return c.Redirect(LoginRedirect(c), fiber.StatusSeeOther)
	}
	if isAdmin, ok := c.Locals(usercontext.KeyIsAdmin).(bool); !ok || !isAdmin {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}
