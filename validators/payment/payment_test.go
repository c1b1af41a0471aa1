package paymentValidator

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studynotion/middleware"
)

func runValidator(t *testing.T, h fiber.Handler, userID uint, body string) (int, middleware.PaymentResult) {
	t.Helper()

	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		if userID != 0 {
			c.Locals("userId", userID)
		}
		return c.Next()
	}, h, func(c *fiber.Ctx) error {
		return middleware.PaymentResponse(c, fiber.StatusOK, true, "passed")
	})

	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result middleware.PaymentResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestCapturePayment(t *testing.T) {
	status, result := runValidator(t, CapturePayment(), 1, `{"courses":[1,2]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "passed", result.Message)

	status, result = runValidator(t, CapturePayment(), 1, `{"courses":[]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, result.Success)
	assert.Equal(t, "Please provide valid course IDs", result.Message)

	status, _ = runValidator(t, CapturePayment(), 1, `{"courses":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestVerifySignature(t *testing.T) {
	status, result := runValidator(t, VerifySignature(), 1, `{"courses":[3]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, result.Success)

	for name, tc := range map[string]struct {
		userID uint
		body   string
	}{
		"no courses": {userID: 1, body: `{}`},
		"empty list": {userID: 1, body: `{"courses":[]}`},
		"zero id":    {userID: 1, body: `{"courses":[0]}`},
		"no user id": {userID: 0, body: `{"courses":[3]}`},
	} {
		t.Run(name, func(t *testing.T) {
			status, result := runValidator(t, VerifySignature(), tc.userID, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "Please provide valid courses and user ID", result.Message)
		})
	}
}

func TestSendPaymentSuccessEmail(t *testing.T) {
	status, result := runValidator(t, SendPaymentSuccessEmail(), 1, `{"amount":49900,"paymentId":"pay_1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, result.Success)

	status, result = runValidator(t, SendPaymentSuccessEmail(), 1, `{"amount":49900,"paymentId":""}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Please provide valid payment details", result.Message)
}
