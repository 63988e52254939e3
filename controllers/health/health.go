package healthController

import (
	"context"
	"time"

	"kisan/database"

	"github.com/gofiber/fiber/v2"
)

var appStart = time.Now()

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

// Health pings the database and reports uptime. It answers 503 when the
// database does not respond within 800ms.
func Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 800*time.Millisecond)
	defer cancel()

	db := check{OK: true}
	if err := database.Database.Ping(ctx); err != nil {
		db = check{OK: false, Err: err.Error()}
	}

	status := fiber.StatusOK
	if !db.OK {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status":     fiber.Map{"ok": db.OK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": fiber.Map{
			"database": db,
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
