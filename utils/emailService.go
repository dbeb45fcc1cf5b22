package utils

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"lms/config"
	"lms/models"
)

// SendEmail sends an HTML e-mail through the configured SMTP account. It is
// synchronous so callers can surface the delivery result; a failure is never
// fatal to the operation that triggered it.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: EndoNurseVR LMS <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all account e-mails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #e9f2f5; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 10px; overflow: hidden; box-shadow: 0 3px 10px rgba(0,0,0,0.1); }
			.content { padding: 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #0c4a6e; text-align: center; margin-top: 0; }
			.credentials { background: #f9fafb; border: 1px solid #e0e0e0; border-radius: 8px; padding: 15px; margin: 20px 0; }
			.btn { display: inline-block; padding: 12px 25px; background-color: #766EA9; color: #FFFFFF; text-decoration: none; border-radius: 6px; margin-top: 20px; }
			.footer { padding: 20px; text-align: center; font-size: 13px; color: #555555; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Best Regards,<br>
				<strong>EndoNurseVR Learning Management System</strong><br>
				&copy; %d
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent, time.Now().Year())
}

// SendAccountCreatedEmail mails the new user their login credentials. Trainees
// additionally get their trainee code.
func SendAccountCreatedEmail(user models.User, plainPassword string) error {
	subject := "Your EndoNurseVR LMS Account Details"

	credentials := fmt.Sprintf(`
		<p><strong>Email:</strong> %s</p>
		<p><strong>Password:</strong> %s</p>
	`, user.Email, plainPassword)
	if user.Role == models.RoleTrainee && user.TraineeID != nil {
		credentials += fmt.Sprintf(`<p><strong>Trainee ID:</strong> %s</p>`, *user.TraineeID)
	}

	body := fmt.Sprintf(`
		<p>Dear %s %s,</p>
		<p>Your account has been successfully created on the EndoNurseVR LMS platform.
		Below are your login details:</p>
		<div class="credentials">%s</div>
		<div style="text-align:center;"><a href="%s" class="btn">Go to Login</a></div>
	`, user.FirstName, user.LastName, credentials, config.AppConfig.LoginURL)

	return SendEmail([]string{user.Email}, subject, getEmailTemplate("EndoNurseVR Learning Management System", body))
}

// SendPasswordResetEmail mails the user their new password after a reset.
func SendPasswordResetEmail(user models.User, newPassword string) error {
	subject := "Your EndoNurseVR LMS Password Has Been Reset"

	body := fmt.Sprintf(`
		<p>Dear %s %s,</p>
		<div class="credentials">
			<p><strong>Email:</strong> %s</p>
			<p><strong>New Password:</strong> %s</p>
		</div>
		<div style="text-align:center;"><a href="%s" class="btn">Login Now</a></div>
	`, user.FirstName, user.LastName, user.Email, newPassword, config.AppConfig.LoginURL)

	return SendEmail([]string{user.Email}, subject, getEmailTemplate("Password Reset Successful", body))
}
