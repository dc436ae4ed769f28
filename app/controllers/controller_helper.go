package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/notepress/notepress/app/service"
	"github.com/notepress/notepress/internal/pkg/middleware"
	"github.com/notepress/notepress/internal/pkg/usercontext"
)

// Session keys, aliased for controllers
const (
	AUTH_KEY       = usercontext.AuthKey
	USER_ID        = usercontext.KeyUserID
	USER_NAME      = usercontext.KeyUsername
	USER_IS_ADMIN  = usercontext.KeyIsAdmin
	FROM_PROTECTED = usercontext.KeyFromProtected
)

func isLoggedIn(c *fiber.Ctx) bool {
	var fromProtected bool
	if protectedValue := c.Locals(FROM_PROTECTED); protectedValue != nil {
		fromProtected = protectedValue.(bool)
	}

	return fromProtected
}

// handleServiceError maps the service error taxonomy onto HTTP
// behavior: auth-required redirects to login with the return target,
// not-found renders the generic 404 (ownership mismatches look exactly
// the same), anything else is a 500.
func handleServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAuthRequired):
		return c.Redirect(middleware.LoginRedirect(c), fiber.StatusSeeOther)
	case errors.Is(err, service.ErrNotFound):
		return renderNotFound(c)
	default:
		return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
	}
}

func renderNotFound(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
		"Page":          "Not Found",
		"FromProtected": userCtx.IsLoggedIn,
		"Username":      userCtx.Username,
	}, "layouts/main")
}

// csrfToken returns the token for form templates, empty outside the
// CSRF-protected group.
func csrfToken(c *fiber.Ctx) string {
	if v := c.Locals("csrf"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// flashError redirects with an error flash message attached
func flashError(c *fiber.Ctx, message, target string) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect(target)
}

// flashSuccess redirects with a success flash message attached
func flashSuccess(c *fiber.Ctx, message, target string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(target)
}
