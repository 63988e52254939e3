package middleware

import (
	"errors"
	"fmt"

	"kisan/database"
	"kisan/logger"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse writes the per-field error object as the whole body.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errors)
}

func NotFoundResponse(c *fiber.Ctx, entity string) error {
	return JsonResponse(c, fiber.StatusNotFound, false, entity+" not found!", nil)
}

// ServerErrorResponse logs err and hides it from the caller.
func ServerErrorResponse(c *fiber.Ctx, message string, err error) error {
	logger.Log.Error(message, "error", err, "method", c.Method(), "path", c.Path(), "request_id", c.Locals("requestid"))
	return JsonResponse(c, fiber.StatusInternalServerError, false, message, nil)
}

// StoreErrorResponse maps a record store error onto a response: a missing
// row is a 404, a dangling reference is a 400 on the offending field, and
// anything else is logged and reported as a 500 with message.
func StoreErrorResponse(c *fiber.Ctx, entity, message string, err error) error {
	var rie *database.ReferentialIntegrityError
	switch {
	case errors.Is(err, database.ErrNotFound):
		return NotFoundResponse(c, entity)
	case errors.As(err, &rie):
		return ValidationErrorResponse(c, map[string][]string{
			rie.Field: {fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", rie.ID)},
		})
	default:
		return ServerErrorResponse(c, message, err)
	}
}

// ErrorHandler renders errors that escape handlers, such as unmatched routes,
// with the same envelope as JsonResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error!"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		logger.Log.Error("unhandled error", "error", err, "method", c.Method(), "path", c.Path())
	}
	return JsonResponse(c, code, false, message, nil)
}
