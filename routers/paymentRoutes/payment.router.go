package paymentRoutes

import (
	paymentController "studynotion/controllers/payment"
	"studynotion/middleware"
	paymentValidator "studynotion/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes registers the dummy checkout routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/v1/payment", middleware.JWTMiddleware)

	paymentGroup.Post("/capturePayment", paymentValidator.CapturePayment(), paymentController.CapturePayment)
	paymentGroup.Post("/verifyPayment", paymentValidator.VerifySignature(), paymentController.VerifySignature)
	paymentGroup.Post("/sendPaymentSuccessEmail", paymentValidator.SendPaymentSuccessEmail(), paymentController.SendPaymentSuccessEmail)
}
