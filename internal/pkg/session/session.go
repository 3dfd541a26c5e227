package session

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/inkpress/inkpress/app/models"
	"github.com/inkpress/inkpress/internal/pkg/env"
	"github.com/inkpress/inkpress/internal/pkg/usercontext"
)

// RememberDuration is how long a "remember me" session survives, across
// process restarts (the store is redis-backed).
const RememberDuration = 7 * 24 * time.Hour

const defaultDuration = 24 * time.Hour

var sessionStore *session.Store

func NewSessionStore() *session.Store {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}

	// Sessions live in redis database 1, the cache uses 0.
	storage := redis.New(redis.Config{
		Host:     env.GetEnv("CACHE_HOST", "localhost"),
		Port:     port,
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Database: 1,
		Reset:    false,
	})

	sessionStore = session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		CookieSameSite: "Lax",
		Expiration:     defaultDuration,
		KeyLookup:      "cookie:session_id",
	})

	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// Login establishes a session for the user. With remember set the session
// lifetime is extended to RememberDuration.
func Login(c *fiber.Ctx, user *models.User, remember bool) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Username)
	sess.Set(usercontext.KeyIsAdmin, user.IsAdmin())
	if remember {
		sess.SetExpiry(RememberDuration)
	}

	return sess.Save()
}

// Logout invalidates the current session.
func Logout(c *fiber.Ctx) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	return sess.Destroy()
}
