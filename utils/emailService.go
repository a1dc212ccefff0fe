package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sadang101/MalkarsMarketing/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Malkars Marketing <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// getEmailTemplate wraps body content in the site's mail layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2A52; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2A52; line-height: 1.6; }
			.content h2 { color: #1A2A52; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Malkars Marketing</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from Malkars Marketing. Please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentConfirmation mails a user after a verified payment enrolls
// them in a course
func SendEnrollmentConfirmation(email, fullName, courseTitle string, amountPaise uint) error {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your payment has been verified and you are now enrolled in:</p>
		<div class="info-box">
			<strong>%s</strong><br/>
			Amount paid: &#8377;%.2f
		</div>
		<p>You can access all published modules from your dashboard.</p>`,
		fullName, courseTitle, float64(amountPaise)/100)

	return SendEmail([]string{email}, "Enrollment Confirmed - "+courseTitle, getEmailTemplate("Enrollment Confirmed", body))
}

// SendDailySalesReport mails the admin a summary of yesterday's orders
func SendDailySalesReport(email string, createdCount, paidCount int64, paidPaise uint64) error {
	body := fmt.Sprintf(`
		<p>Sales summary for yesterday:</p>
		<div class="info-box">
			Orders created: <strong>%d</strong><br/>
			Orders paid: <strong>%d</strong><br/>
			Revenue: <strong>&#8377;%.2f</strong>
		</div>`,
		createdCount, paidCount, float64(paidPaise)/100)

	return SendEmail([]string{email}, "Daily Sales Report", getEmailTemplate("Daily Sales Report", body))
}
