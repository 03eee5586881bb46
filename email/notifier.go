package email

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"cropguard-service/config"
)

// demoDelay approximates the latency of a real provider call in demo mode.
const demoDelay = 1 * time.Second

// Notifier sends notification emails. Without a SendGrid API key it runs in
// demo mode: the message is logged and nothing leaves the process.
type Notifier struct {
	config *config.Config
	client *sendgrid.Client
}

// NewNotifier creates a notifier. The SendGrid client is only built when an
// API key is configured.
func NewNotifier(cfg *config.Config) *Notifier {
	n := &Notifier{config: cfg}
	if cfg.SendGridAPIKey != "" {
		n.client = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	} else {
		log.Info("No SendGrid API key configured, notifications run in demo mode")
	}
	return n
}

// Send delivers one notification to a recipient.
func (n *Notifier) Send(recipient, subject, message string) error {
	if n.client == nil {
		log.Infof("Email notification to %s: %s", recipient, subject)
		log.Infof("Message: %s", message)
		time.Sleep(demoDelay)
		return nil
	}

	from := mail.NewEmail(n.config.SendGridFromName, n.config.SendGridFromEmail)
	to := mail.NewEmail(recipient, recipient)
	m := mail.NewSingleEmail(from, subject, to, message, message)

	resp, err := n.client.Send(m)
	if err != nil {
		return fmt.Errorf("sending notification to %s: %w", recipient, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d for %s", resp.StatusCode, recipient)
	}
	log.Infof("Sent notification to %s", recipient)
	return nil
}
