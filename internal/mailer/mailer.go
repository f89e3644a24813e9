package mailer

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/primelaser/backend/internal/config"
	"github.com/primelaser/backend/internal/model"
)

// Mailer sends a best-effort email summary for each stored contact record.
// When mail credentials are not configured at startup the mailer is disabled
// for the whole process; the capability check is not re-evaluated per call.
type Mailer struct {
	client *mail.Client
	cfg    config.EmailConfig
}

// New creates a Mailer from the email configuration. A missing credential
// or a client setup failure disables the mailer rather than failing startup.
func New(cfg config.EmailConfig) *Mailer {
	if !cfg.Enabled() {
		slog.Warn("email credentials not set, notifications disabled")
		return &Mailer{cfg: cfg}
	}

	client, err := mail.NewClient(cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Pass),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		slog.Error("mail client setup failed, notifications disabled", "error", err)
		return &Mailer{cfg: cfg}
	}

	slog.Info("email notifications enabled", "smtp_host", cfg.SMTPHost, "recipient", cfg.Recipient())
	return &Mailer{client: client, cfg: cfg}
}

// Enabled reports whether the mailer can attempt deliveries.
func (m *Mailer) Enabled() bool {
	return m.client != nil
}

// Notify makes a single delivery attempt for the given record. Transport
// errors are logged and reported as NotifyFailed; they are never propagated
// as errors to the caller.
func (m *Mailer) Notify(ctx context.Context, rec *model.ContactRecord) model.NotifyOutcome {
	if !m.Enabled() {
		return model.NotifyDisabled
	}

	msg, err := m.compose(rec)
	if err != nil {
		slog.Error("notification email compose failed", "error", err, "contact_id", rec.ID)
		return model.NotifyFailed
	}

	sendCtx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()
	if err := m.client.DialAndSendWithContext(sendCtx, msg); err != nil {
		slog.Error("notification email failed", "error", err, "contact_id", rec.ID)
		return model.NotifyFailed
	}
	return model.NotifySent
}

func (m *Mailer) compose(rec *model.ContactRecord) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat("PrimeLaser Cleaning", m.cfg.User); err != nil {
		return nil, err
	}
	if err := msg.To(m.cfg.Recipient()); err != nil {
		return nil, err
	}
	msg.Subject("New contact message from: " + rec.Name)
	msg.SetBodyString(mail.TypeTextPlain, textBody(rec))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(rec))
	return msg, nil
}

func textBody(rec *model.ContactRecord) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nIP: %s\nUser Agent: %s\nDate: %s\n\nMessage:\n%s\n",
		rec.Name, rec.Email, rec.ClientIP, rec.UserAgent,
		rec.SubmittedAt.Format("2006-01-02 15:04:05 MST"), rec.Message)
}

func htmlBody(rec *model.ContactRecord) string {
	message := strings.ReplaceAll(html.EscapeString(rec.Message), "\n", "<br>")
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2>New contact message</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Date:</strong> %s</p>
  <p><strong>IP:</strong> %s</p>
  <h3>Message:</h3>
  <p>%s</p>
</div>`,
		html.EscapeString(rec.Name), html.EscapeString(rec.Email),
		rec.SubmittedAt.Format("2006-01-02 15:04:05 MST"),
		html.EscapeString(rec.ClientIP), message)
}
