package response

import "github.com/gofiber/fiber/v3"

// Fallback messages for failures no route pins down. The strings clients
// actually depend on are per-route and live in the handlers.
const (
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "Unauthorized"
	MessageNotFound            = "Not found"
	MessageInternalServerError = "Internal Server Error"
)

type messageBody struct {
	Message string `json:"message"`
}

// Message writes the {"message": ...} error body most routes share.
func Message(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(messageBody{Message: message})
}

// JSON writes an explicit body for routes whose error shape differs from the
// shared message envelope.
func JSON(c fiber.Ctx, status int, body any) error {
	return c.Status(normalizeStatus(status)).JSON(body)
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}
