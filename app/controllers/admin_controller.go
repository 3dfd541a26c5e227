package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/inkpress/inkpress/internal/pkg/cache"
)

const dashboardCacheTTL = 60 * time.Second

// HandleAdminDashboard renders entity totals and the most recent activity.
// Totals are cached briefly, moderation does not need them live.
func HandleAdminDashboard(c *fiber.Ctx) error {
	totalUsers := cachedCount("admin:count:users", svc.Identity.CountUsers)
	totalPosts := cachedCount("admin:count:posts", svc.Content.CountPosts)
	totalComments := cachedCount("admin:count:comments", svc.Discussion.CountComments)
	totalCategories := cachedCount("admin:count:categories", svc.Taxonomy.CountCategories)

	recentPosts, err := svc.Content.RecentPosts(5)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load recent posts")
	}
	recentComments, err := svc.Discussion.RecentComments(5)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load recent comments")
	}

	return render(c, "admin/dashboard", fiber.Map{
		"Title":           "Dashboard",
		"TotalUsers":      totalUsers,
		"TotalPosts":      totalPosts,
		"TotalComments":   totalComments,
		"TotalCategories": totalCategories,
		"RecentPosts":     recentPosts,
		"RecentComments":  recentComments,
	})
}

func cachedCount(key string, load func() (int64, error)) int64 {
	if cached, err := cache.Get(key); err == nil {
		if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return n
		}
	}

	n, err := load()
	if err != nil {
		return 0
	}
	_ = cache.Set(key, n, dashboardCacheTTL)
	return n
}
