package utils

import (
	"fmt"
	"html"
)

// HTML wrapper shared by every StudyNotion email
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #ffffff; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 0 auto; padding: 20px; text-align: center; }
			.logo { max-width: 200px; margin-bottom: 20px; }
			.message { font-size: 18px; font-weight: bold; margin-bottom: 20px; }
			.body { font-size: 16px; margin-bottom: 20px; color: #333333; }
			.cta { display: inline-block; padding: 10px 20px; background-color: #FFD60A; color: #000000; text-decoration: none; border-radius: 5px; font-size: 16px; font-weight: bold; margin-top: 20px; }
			.thumbnail { max-width: 100%%; border-radius: 6px; margin: 16px 0; }
			.support { font-size: 14px; color: #999999; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="message">%s</div>
			<div class="body">
				%s
			</div>
			<div class="support">
				If you have any questions or need assistance, please feel free to reach out to
				<a href="mailto:info@studynotion.com">info@studynotion.com</a>. We are here to help!
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// CourseEnrollmentEmail is sent once per course after a successful enrollment
func CourseEnrollmentEmail(courseName, name, courseDescription, thumbnail string) string {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully registered for the course <span class="highlight">"%s"</span>.</p>
		<img class="thumbnail" src="%s" alt="%s">
		<p>%s</p>
		<p>Please log in to the learning platform to access the course materials and start your learning journey.</p>
		<a class="cta" href="https://studynotion.com/dashboard/enrolled-courses">Go to Dashboard</a>
	`,
		html.EscapeString(name),
		html.EscapeString(courseName),
		html.EscapeString(thumbnail),
		html.EscapeString(courseName),
		html.EscapeString(courseDescription),
	)

	return getEmailTemplate("Course Registration Confirmation", body)
}

// PaymentSuccessEmail confirms a payment. amount is in major currency units.
func PaymentSuccessEmail(amount float64, paymentID, orderID, name string) string {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received a payment of <strong>₹%.2f</strong>.</p>
		<p>Your Payment ID is <b>%s</b></p>
		<p>Your Order ID is <b>%s</b></p>
	`,
		html.EscapeString(name),
		amount,
		html.EscapeString(paymentID),
		html.EscapeString(orderID),
	)

	return getEmailTemplate("Course Payment Confirmation", body)
}
