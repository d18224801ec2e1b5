// Package apperr defines the stable error codes the API returns alongside
// the human-readable Spanish messages the frontend displays verbatim.
package apperr

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeInvalidID    = "invalid_id"
	CodeValidation   = "validation"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeInternal     = "internal"
)

func InvalidID(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    CodeInvalidID,
		"message": message,
	})
}

func Validation(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    CodeValidation,
		"message": message,
	})
}

// ValidationMap returns every failed field at once, mirroring the personnel
// validator contract: {"errors": {campo: mensaje}}.
func ValidationMap(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":   CodeValidation,
		"errors": fields,
	})
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    CodeUnauthorized,
		"message": message,
	})
}

func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"code":    CodeNotFound,
		"message": message,
	})
}

func Conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"code":    CodeConflict,
		"message": message,
	})
}

// Internal logs the underlying error server-side and answers with a generic
// message. Driver error text is never sent to the client.
func Internal(c *fiber.Ctx, message string, err error) error {
	if err != nil {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    CodeInternal,
		"message": message,
	})
}
