package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateContactNotification notifies the admin about a new contact.
	TemplateContactNotification Template = "contact_notification"

	// TemplateContactConfirmation confirms receipt to the contact.
	TemplateContactConfirmation Template = "contact_confirmation"

	// TemplateInquiryNotification notifies the admin about a new inquiry.
	TemplateInquiryNotification Template = "inquiry_notification"

	// TemplateInquiryConfirmation confirms receipt to the inquirer.
	TemplateInquiryConfirmation Template = "inquiry_confirmation"

	// TemplateNewsletterWelcome welcomes a new subscriber.
	TemplateNewsletterWelcome Template = "newsletter_welcome"
)

// Templates are embedded so the binary carries its own email bodies.
//
//go:embed templates/*.html
var templateFS embed.FS

// render executes the named template with data. Untrusted values pass
// through html/template's contextual escaping.
func render(templateName Template, data map[string]string) (string, error) {
	tmplPath := fmt.Sprintf("templates/%s.html", templateName)

	tmpl, err := template.ParseFS(templateFS, tmplPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	return body.String(), nil
}
