package paymentController

import (
	"log"

	"studynotion/config"
	"studynotion/database"
	"studynotion/middleware"
	"studynotion/utils"
	paymentValidator "studynotion/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/juju/errors"
)

// CapturePayment prices the requested courses and enrolls the user. No money
// moves: the payment is always treated as successful.
func CapturePayment(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	reqData, ok := c.Locals("validatedCourses").(*paymentValidator.CoursesRequest)
	if !ok {
		return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Invalid request data!")
	}

	totalAmount, err := CheckoutTotal(c.UserContext(), database.Database.Db, reqData.Courses, userID)
	if err != nil {
		return checkoutErrorResponse(c, err)
	}

	log.Printf("[PAYMENT] Dummy capture of %.2f for user %d (%d courses)", totalAmount, userID, len(reqData.Courses))

	if err := EnrollUserInCourses(c.UserContext(), database.Database.Db, utils.Mail, reqData.Courses, userID); err != nil {
		log.Printf("[PAYMENT] Capture for user %d failed: %v", userID, err)
		return middleware.PaymentResponse(c, fiber.StatusInternalServerError, false, err.Error())
	}

	return middleware.PaymentRedirectResponse(c, "Payment successful (dummy transaction)", config.AppConfig.EnrollmentRedirect)
}

// VerifySignature enrolls the user without checking any gateway signature.
func VerifySignature(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	reqData, ok := c.Locals("validatedCourses").(*paymentValidator.CoursesRequest)
	if !ok {
		return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Invalid request data!")
	}

	// Same guard as CapturePayment so a replayed verification cannot enroll twice.
	if _, err := CheckoutTotal(c.UserContext(), database.Database.Db, reqData.Courses, userID); err != nil {
		return checkoutErrorResponse(c, err)
	}

	if err := EnrollUserInCourses(c.UserContext(), database.Database.Db, utils.Mail, reqData.Courses, userID); err != nil {
		log.Printf("[PAYMENT] Verification for user %d failed: %v", userID, err)
		return middleware.PaymentResponse(c, fiber.StatusInternalServerError, false, err.Error())
	}

	return middleware.PaymentRedirectResponse(c, "Payment signature verified (dummy transaction) and user enrolled", config.AppConfig.EnrollmentRedirect)
}

func SendPaymentSuccessEmail(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	reqData, ok := c.Locals("validatedPaymentEmail").(*paymentValidator.PaymentEmailRequest)
	if !ok {
		return middleware.PaymentResponse(c, fiber.StatusBadRequest, false, "Invalid request data!")
	}

	enrolledStudent, err := findUser(database.Database.Db.WithContext(c.UserContext()), userID)
	if err != nil {
		log.Printf("[PAYMENT] Could not load user %d for payment email: %v", userID, err)
		return middleware.PaymentResponse(c, fiber.StatusInternalServerError, false, err.Error())
	}

	// amount arrives in subunits (paise)
	body := utils.PaymentSuccessEmail(reqData.Amount/100, reqData.PaymentID, reqData.OrderID, enrolledStudent.FullName())
	if err := utils.Mail.Send(enrolledStudent.Email, "StudyNotion Payment successful", body); err != nil {
		log.Printf("[PAYMENT] Payment email to user %d failed: %v", userID, err)
		return middleware.PaymentResponse(c, fiber.StatusInternalServerError, false, err.Error())
	}

	return middleware.PaymentResponse(c, fiber.StatusOK, true, "Payment success email sent")
}

func checkoutErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		return middleware.PaymentResponse(c, fiber.StatusOK, false, "Could not find the course")
	case errors.Is(err, ErrAlreadyEnrolled):
		return middleware.PaymentResponse(c, fiber.StatusOK, false, "Student is already enrolled")
	default:
		log.Printf("[PAYMENT] Checkout failed: %v", err)
		return middleware.PaymentResponse(c, fiber.StatusInternalServerError, false, err.Error())
	}
}
