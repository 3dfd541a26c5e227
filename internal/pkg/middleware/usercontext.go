package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/internal/pkg/session"
	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a UserContext for every
// request. The stores never read session state; they receive the actor this
// middleware resolved.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := func() error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{})
		c.Locals(usercontext.KeyFromProtected, false)
		c.Locals(usercontext.KeyIsAdmin, false)
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return anonymous()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		return anonymous()
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		UserID:     userID.(uint),
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	})
	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyIsAdmin, isAdmin)

	return c.Next()
}
