package paramsValidator

import (
	"strconv"
	"strings"

	"kisan/middleware"

	"github.com/gofiber/fiber/v2"
)

// RecordIDKey is the Locals key holding the parsed :id path parameter.
const RecordIDKey = "recordID"

// RecordID parses the :id path parameter. Anything that is not a positive
// integer cannot name a record, so it is answered as not found.
func RecordID(entity string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(strings.TrimSpace(c.Params("id")), 10, 64)
		if err != nil || id == 0 {
			return middleware.NotFoundResponse(c, entity)
		}
		c.Locals(RecordIDKey, uint(id))
		return c.Next()
	}
}
