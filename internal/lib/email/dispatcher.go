package email

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/x67digital/site-api/internal/config"
	"github.com/x67digital/site-api/internal/model"
)

// Dispatcher renders and sends the transactional emails the API produces.
// Every Send* method reports success as a plain bool so callers can log the
// outcome without letting a provider outage fail the originating request.
type Dispatcher struct {
	sender Sender
	log    *zerolog.Logger
	from   string
	admin  string
}

func NewDispatcher(cfg *config.Config, sender Sender, log *zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		log:    log,
		from:   fmt.Sprintf("%s <%s>", cfg.Email.FromName, cfg.Email.FromAddress),
		admin:  cfg.Email.AdminAddress,
	}
}

// SendContactNotification alerts the site owner about a new contact message.
func (d *Dispatcher) SendContactNotification(contact *model.Contact) bool {
	html, err := render(TemplateContactNotification, map[string]string{
		"Name":      contact.Name,
		"Email":     contact.Email,
		"Phone":     orDefault(contact.Phone, "Nu a furnizat"),
		"Message":   contact.Message,
		"CreatedAt": contact.CreatedAt.Format("02.01.2006 15:04"),
	})
	if err != nil {
		d.logFailure("contact notification", d.admin, err)
		return false
	}

	subject := fmt.Sprintf("🔔 Contact Nou: %s", contact.Name)
	if err := d.sender.Send(d.from, []string{d.admin}, subject, html); err != nil {
		d.logFailure("contact notification", d.admin, err)
		return false
	}
	return true
}

// SendContactConfirmation acknowledges the sender's message.
func (d *Dispatcher) SendContactConfirmation(contact *model.Contact) bool {
	html, err := render(TemplateContactConfirmation, map[string]string{
		"Name":    contact.Name,
		"Message": contact.Message,
	})
	if err != nil {
		d.logFailure("contact confirmation", contact.Email, err)
		return false
	}

	subject := "✅ Am primit mesajul tău - X67 Digital"
	if err := d.sender.Send(d.from, []string{contact.Email}, subject, html); err != nil {
		d.logFailure("contact confirmation", contact.Email, err)
		return false
	}
	return true
}

// SendInquiryNotification alerts the site owner about a new template inquiry.
func (d *Dispatcher) SendInquiryNotification(inquiry *model.Inquiry) bool {
	html, err := render(TemplateInquiryNotification, map[string]string{
		"Name":            inquiry.Name,
		"Email":           inquiry.Email,
		"Phone":           orDefault(inquiry.Phone, "Nu a furnizat"),
		"BusinessType":    inquiry.BusinessType,
		"Budget":          inquiry.Budget,
		"Functionality":   inquiry.Functionality,
		"TemplateID":      orDefault(inquiry.TemplateID, "Nespecificat"),
		"AdditionalNotes": orDefault(inquiry.AdditionalNotes, ""),
	})
	if err != nil {
		d.logFailure("inquiry notification", d.admin, err)
		return false
	}

	subject := fmt.Sprintf("🚀 Cerere Template Nouă: %s", inquiry.Name)
	if err := d.sender.Send(d.from, []string{d.admin}, subject, html); err != nil {
		d.logFailure("inquiry notification", d.admin, err)
		return false
	}
	return true
}

// SendInquiryConfirmation acknowledges a template inquiry.
func (d *Dispatcher) SendInquiryConfirmation(inquiry *model.Inquiry) bool {
	html, err := render(TemplateInquiryConfirmation, map[string]string{
		"Name": inquiry.Name,
	})
	if err != nil {
		d.logFailure("inquiry confirmation", inquiry.Email, err)
		return false
	}

	subject := "✅ Cererea ta a fost primită - X67 Digital"
	if err := d.sender.Send(d.from, []string{inquiry.Email}, subject, html); err != nil {
		d.logFailure("inquiry confirmation", inquiry.Email, err)
		return false
	}
	return true
}

// SendNewsletterWelcome greets a newly subscribed reader.
func (d *Dispatcher) SendNewsletterWelcome(subscriber *model.Subscriber) bool {
	html, err := render(TemplateNewsletterWelcome, map[string]string{
		"Name": subscriber.DisplayName(),
	})
	if err != nil {
		d.logFailure("newsletter welcome", subscriber.Email, err)
		return false
	}

	subject := "🎉 Bine ai venit în comunitatea X67 Digital!"
	if err := d.sender.Send(d.from, []string{subscriber.Email}, subject, html); err != nil {
		d.logFailure("newsletter welcome", subscriber.Email, err)
		return false
	}
	return true
}

func (d *Dispatcher) logFailure(kind, recipient string, err error) {
	d.log.Error().
		Err(err).
		Str("email", kind).
		Str("recipient", recipient).
		Msg("Failed to send email")
}

func orDefault(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
