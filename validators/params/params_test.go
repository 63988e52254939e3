package paramsValidator

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordID(t *testing.T) {
	app := fiber.New()
	app.Get("/farmers/:id/", RecordID("Farmer"), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals(RecordIDKey))
	})

	cases := map[string]int{
		"/farmers/12/":  fiber.StatusOK,
		"/farmers/0/":   fiber.StatusNotFound,
		"/farmers/-3/":  fiber.StatusNotFound,
		"/farmers/abc/": fiber.StatusNotFound,
		"/farmers/1.5/": fiber.StatusNotFound,
	}
	for path, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
