package email

import (
	"fmt"
	"html"
	"net/url"

	"gopkg.in/gomail.v2"

	"github.com/appmaster-hq/appmaster/internal/shared/logger"
)

// Sender delivers the sign-up confirmation mail.
type Sender interface {
	SendConfirmationEmail(to, name, token string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// BaseURL prefixes the confirmation link, e.g. "https://app.example.com".
	BaseURL string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (s *SMTPEmailService) SendConfirmationEmail(to, name, token string) error {
	if err := s.dialer.DialAndSend(s.confirmationMessage(to, name, token)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPEmailService) confirmationMessage(to, name, token string) *gomail.Message {
	link := ConfirmationURL(s.config.BaseURL, token)

	htmlBody := fmt.Sprintf(`<html>
<body>
	<h2>Welcome to AppMaster, %s!</h2>
	<p>Confirm your email address to finish creating your account:</p>
	<p><a href="%s">Confirm email address</a></p>
	<p>If you did not sign up, you can ignore this message.</p>
</body>
</html>`, html.EscapeString(name), html.EscapeString(link))

	plainBody := fmt.Sprintf(`Welcome to AppMaster, %s!

Confirm your email address to finish creating your account:
%s

If you did not sign up, you can ignore this message.
`, name, link)

	m := gomail.NewMessage(gomail.SetEncoding(gomail.Unencoded))
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Confirm your AppMaster account")
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

func ConfirmationURL(baseURL, token string) string {
	return fmt.Sprintf("%s/auth/verify-email?token=%s", baseURL, url.QueryEscape(token))
}

// LogSender stands in for SMTP when email is disabled; it logs the link.
type LogSender struct {
	baseURL string
	logger  logger.Interface
}

func NewLogSender(baseURL string, log logger.Interface) *LogSender {
	return &LogSender{baseURL: baseURL, logger: log}
}

func (s *LogSender) SendConfirmationEmail(to, name, token string) error {
	s.logger.Infow("email disabled, confirmation link not sent",
		"to", to,
		"link", ConfirmationURL(s.baseURL, token))
	return nil
}
