package controllers

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-gomail/gomail"
)

// SendEmail sends an email with an optional attachment. When no sender
// account is configured the send is skipped, delivery is best-effort.
func SendEmail(msg, subject, email, attachmentName string, attachmentData []byte) error {
	senderEmail := os.Getenv("EMAIL_USER")
	senderPassword := os.Getenv("EMAIL_PASS")
	if senderEmail == "" {
		log.Println("No sender email configured, skipping email to", email)
		return nil
	}

	// Compose email message
	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", msg)

	// Add attachment
	if attachmentData != nil {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachmentData)
			return err
		}))
	}

	// Dial to SMTP server and send email
	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
