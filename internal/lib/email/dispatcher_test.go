package email

import (
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/x67digital/site-api/internal/config"
	"github.com/x67digital/site-api/internal/model"
)

type sentEmail struct {
	from    string
	to      []string
	subject string
	html    string
}

type fakeSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeSender) Send(from string, to []string, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{from: from, to: to, subject: subject, html: html})
	return nil
}

func newTestDispatcher(sender Sender) *Dispatcher {
	cfg := &config.Config{
		Email: config.EmailConfig{
			FromName:     "X67 Digital",
			FromAddress:  "noreply@x67digital.com",
			AdminAddress: "admin@x67digital.com",
		},
	}
	log := zerolog.Nop()
	return NewDispatcher(cfg, sender, &log)
}

func strptr(s string) *string { return &s }

func TestDispatcher_SendContactNotification(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	contact := model.NewContact("Ana Pop", "ana@example.com", strptr("0712345678"), "Vreau un site nou.")

	if ok := d.SendContactNotification(contact); !ok {
		t.Fatal("expected send to succeed")
	}

	if len(sender.sent) != 1 {
		t.Fatalf("expected one email, got %d", len(sender.sent))
	}

	msg := sender.sent[0]
	if msg.from != "X67 Digital <noreply@x67digital.com>" {
		t.Errorf("unexpected from %q", msg.from)
	}
	if len(msg.to) != 1 || msg.to[0] != "admin@x67digital.com" {
		t.Errorf("expected notification to go to admin, got %v", msg.to)
	}
	if msg.subject != "🔔 Contact Nou: Ana Pop" {
		t.Errorf("unexpected subject %q", msg.subject)
	}
	if !strings.Contains(msg.html, "ana@example.com") {
		t.Error("expected body to contain the sender email")
	}
	if !strings.Contains(msg.html, "0712345678") {
		t.Error("expected body to contain the phone number")
	}
}

func TestDispatcher_SendContactNotification_NoPhone(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	contact := model.NewContact("Ana Pop", "ana@example.com", nil, "Vreau un site nou.")

	if ok := d.SendContactNotification(contact); !ok {
		t.Fatal("expected send to succeed")
	}
	if !strings.Contains(sender.sent[0].html, "Nu a furnizat") {
		t.Error("expected placeholder for missing phone")
	}
}

func TestDispatcher_SendContactConfirmation_GoesToVisitor(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	contact := model.NewContact("Ana Pop", "ana@example.com", nil, "Vreau un site nou.")

	if ok := d.SendContactConfirmation(contact); !ok {
		t.Fatal("expected send to succeed")
	}

	msg := sender.sent[0]
	if msg.to[0] != "ana@example.com" {
		t.Errorf("expected confirmation to go to the visitor, got %v", msg.to)
	}
	if !strings.Contains(msg.html, "Bună Ana Pop") {
		t.Error("expected greeting with the visitor name")
	}
}

func TestDispatcher_EscapesSubmittedContent(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	contact := model.NewContact("Ana", "ana@example.com", nil,
		`<script>alert("x")</script> un mesaj suficient de lung`)

	if ok := d.SendContactNotification(contact); !ok {
		t.Fatal("expected send to succeed")
	}

	html := sender.sent[0].html
	if strings.Contains(html, "<script>") {
		t.Error("expected submitted markup to be escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped script tag in body")
	}
}

func TestDispatcher_SendFailureReturnsFalse(t *testing.T) {
	sender := &fakeSender{err: errors.New("provider down")}
	d := newTestDispatcher(sender)

	contact := model.NewContact("Ana", "ana@example.com", nil, "Vreau un site nou.")

	if ok := d.SendContactNotification(contact); ok {
		t.Error("expected send failure to report false")
	}
	if ok := d.SendContactConfirmation(contact); ok {
		t.Error("expected send failure to report false")
	}
}

func TestDispatcher_SendInquiryNotification(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	inquiry := model.NewInquiry("Ion Vasile", "ion@example.com", nil,
		"restaurant", "500-1000", "rezervari online",
		strptr("tmpl-12"), strptr("Cat mai repede."))

	if ok := d.SendInquiryNotification(inquiry); !ok {
		t.Fatal("expected send to succeed")
	}

	msg := sender.sent[0]
	if msg.to[0] != "admin@x67digital.com" {
		t.Errorf("expected notification to go to admin, got %v", msg.to)
	}
	if msg.subject != "🚀 Cerere Template Nouă: Ion Vasile" {
		t.Errorf("unexpected subject %q", msg.subject)
	}
	for _, want := range []string{"restaurant", "500-1000", "rezervari online", "tmpl-12", "Cat mai repede."} {
		if !strings.Contains(msg.html, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestDispatcher_SendInquiryNotification_OmitsEmptyNotes(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	inquiry := model.NewInquiry("Ion Vasile", "ion@example.com", nil,
		"restaurant", "500-1000", "rezervari online", nil, nil)

	if ok := d.SendInquiryNotification(inquiry); !ok {
		t.Fatal("expected send to succeed")
	}
	if strings.Contains(sender.sent[0].html, "Note Adiționale") {
		t.Error("expected notes block to be omitted when empty")
	}
	if !strings.Contains(sender.sent[0].html, "Nespecificat") {
		t.Error("expected placeholder for missing template id")
	}
}

func TestDispatcher_SendNewsletterWelcome_DefaultSalutation(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	subscriber := model.NewSubscriber("ana@example.com", nil)

	if ok := d.SendNewsletterWelcome(subscriber); !ok {
		t.Fatal("expected send to succeed")
	}

	msg := sender.sent[0]
	if msg.subject != "🎉 Bine ai venit în comunitatea X67 Digital!" {
		t.Errorf("unexpected subject %q", msg.subject)
	}
	if !strings.Contains(msg.html, "Salut Prieten!") {
		t.Error("expected default salutation for anonymous subscriber")
	}
}

func TestDispatcher_SendNewsletterWelcome_NamedSubscriber(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender)

	subscriber := model.NewSubscriber("maria@example.com", strptr("Maria"))

	if ok := d.SendNewsletterWelcome(subscriber); !ok {
		t.Fatal("expected send to succeed")
	}
	if !strings.Contains(sender.sent[0].html, "Salut Maria!") {
		t.Error("expected salutation with subscriber name")
	}
}
