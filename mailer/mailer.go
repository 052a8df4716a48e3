package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ReplyTo  string
}

// Mailer sends the password reset emails over SMTP.
type Mailer struct {
	cfg  Config
	send func(m ...*gomail.Message) error
}

func New(cfg Config) *Mailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &Mailer{cfg: cfg, send: dialer.DialAndSend}
}

func (m *Mailer) SendResetCode(to, name, token string) error {
	body, err := render("reset_code.html", map[string]string{"Name": name, "Token": token})
	if err != nil {
		return err
	}
	return m.deliver(to, "Password Reset Code", body)
}

func (m *Mailer) SendResetConfirmation(to, name string) error {
	body, err := render("reset_confirmation.html", map[string]string{"Name": name})
	if err != nil {
		return err
	}
	return m.deliver(to, "Password Reset Successful", body)
}

func (m *Mailer) deliver(to, subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	if m.cfg.ReplyTo != "" {
		msg.SetHeader("Reply-To", m.cfg.ReplyTo)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send %q to %s: %w", subject, to, err)
	}
	return nil
}

func render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
