package utils

import (
	"net/smtp"
	"os"
)

// SendMail delivers a raw message through the configured Gmail account.
// Callers run it from a goroutine; a delivery failure is logged and
// never bubbles up to the request that triggered it.
func SendMail(email string, message []byte) {
	from := os.Getenv("GMAIL_USER")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	to := email

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		LogError(err, "Email delivery failed")
		return
	}

	LogSuccess("Email sent")
}
