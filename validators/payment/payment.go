package paymentValidator

import (
	"studynotion/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CoursesRequest is the body of capturePayment and verifyPayment
type CoursesRequest struct {
	Courses []uint `json:"courses" validate:"dive,gt=0"`
}

// PaymentEmailRequest is the body of sendPaymentSuccessEmail. Amount is in currency subunits.
type PaymentEmailRequest struct {
	Amount    float64 `json:"amount" validate:"required"`
	PaymentID string  `json:"paymentId" validate:"required"`
	OrderID   string  `json:"orderId"`
}

// CapturePayment accepts a missing or empty course list with a 200 so the
// client can show the message inline.
func CapturePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Invalid request body!")
		}

		if len(reqData.Courses) == 0 {
			return middleware.PaymentResponse(c, fiber.StatusOK, false, "Please provide valid course IDs")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Please provide valid course IDs")
		}

		c.Locals("validatedCourses", reqData)
		return c.Next()
	}
}

func VerifySignature() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Invalid request body!")
		}

		if len(reqData.Courses) == 0 || middleware.UserID(c) == 0 || validate.Struct(reqData) != nil {
			return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Please provide valid courses and user ID")
		}

		c.Locals("validatedCourses", reqData)
		return c.Next()
	}
}

func SendPaymentSuccessEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaymentEmailRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Invalid request body!")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Please provide valid payment details")
		}

		c.Locals("validatedPaymentEmail", reqData)
		return c.Next()
	}
}
