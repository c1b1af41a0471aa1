package middleware

import "github.com/gofiber/fiber/v2"

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// PaymentResult is the body every payment route answers with.
type PaymentResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

func PaymentResponse(c *fiber.Ctx, statusCode int, success bool, message string) error {
	return c.Status(statusCode).JSON(PaymentResult{Success: success, Message: message})
}

func PaymentRedirectResponse(c *fiber.Ctx, message, redirectTo string) error {
	return c.Status(fiber.StatusOK).JSON(PaymentResult{
		Success:    true,
		Message:    message,
		RedirectTo: redirectTo,
	})
}
