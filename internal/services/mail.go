package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"yatube/internal/config"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	cfg := config.Get()

	enabled := cfg.SMTPHost != "" && cfg.SMTPPort != "" &&
		cfg.SMTPUser != "" && cfg.SMTPPass != "" && cfg.SMTPFrom != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: Yatube <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			log.Printf("Failed to send email to %v: %v", to, err)
		} else {
			log.Printf("Email sent to %v: %s", to, subject)
		}
	}()
}

// SendPasswordReset mails the reset code a user needs to choose a new password.
func (s *MailService) SendPasswordReset(to, username, code string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Someone (hopefully you) requested a password reset for your Yatube account.</p>
		<p>Your reset code is: <strong>%s</strong></p>
		<p>If you did not request this, you can safely ignore this email.</p>`,
		username, code)
	s.sendAsync([]string{to}, "Yatube password reset", body)
}

// SendWelcome greets a freshly registered user.
func (s *MailService) SendWelcome(to, username string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to Yatube! Publish your first post, join a group, or follow
		an author to build your feed.</p>`,
		username)
	s.sendAsync([]string{to}, "Welcome to Yatube", body)
}
