package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/notepress/notepress/internal/pkg/session"
	"github.com/notepress/notepress/internal/pkg/usercontext"
)

// UserContextMiddleware resolves every request to an anonymous or
// authenticated user context. This centralizes session handling so no
// controller reads the session store directly.
func UserContextMiddleware(c *fiber.Ctx) error {
	// Goth uses its own fiber session store and relies on per-request
	// locals; skip our app session on /auth/* to prevent cross-store
	// collisions.
	if strings.HasPrefix(c.Path(), "/auth/") {
		return c.Next()
	}

	store := session.GetSessionStore()
	if store == nil {
		return anonymous(c)
	}
	sess, err := store.Get(c)
	if err != nil {
		return anonymous(c)
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		return anonymous(c)
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	userCtx := usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	}
	c.Locals("USER_CONTEXT", userCtx)
	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)

	return c.Next()
}

func anonymous(c *fiber.Ctx) error {
	c.Locals("USER_CONTEXT", usercontext.UserContext{
		IsLoggedIn: false,
		IsAdmin:    false,
	})
	c.Locals(usercontext.KeyFromProtected, false)
	c.Locals(usercontext.KeyIsAdmin, false)
	return c.Next()
}
