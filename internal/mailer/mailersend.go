package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendMailer struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSendMailer(apiKey, fromName, fromEmail string) (*MailerSendMailer, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, errors.New("mailer disabled (missing MAILERSEND_API_KEY or MAIL_FROM_EMAIL)")
	}
	return &MailerSendMailer{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}, nil
}

func (m *MailerSendMailer) send(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (m *MailerSendMailer) SendBookingReceived(toEmail, toName, bookingID, packageTitle string, totalPrice float64) error {
	subject := fmt.Sprintf("Booking %s received", bookingID)
	text := fmt.Sprintf("Hi %s,\n\nWe received your booking %s for %s. Total: $%.2f.\nWe'll email you once it's confirmed.", toName, bookingID, packageTitle, totalPrice)
	html := fmt.Sprintf("<p>Hi %s,</p><p>We received your booking <b>%s</b> for <b>%s</b>. Total: <b>$%.2f</b>.</p><p>We'll email you once it's confirmed.</p>", toName, bookingID, packageTitle, totalPrice)
	return m.send(toEmail, toName, subject, text, html)
}

func (m *MailerSendMailer) SendBookingAlert(toEmail, bookingID, packageTitle, customerName string, totalPrice float64) error {
	subject := fmt.Sprintf("New booking %s", bookingID)
	text := fmt.Sprintf("New booking %s: %s booked %s. Total: $%.2f.\nReview it in the admin panel.", bookingID, customerName, packageTitle, totalPrice)
	html := fmt.Sprintf("<p>New booking <b>%s</b>: %s booked <b>%s</b>. Total: <b>$%.2f</b>.</p><p>Review it in the admin panel.</p>", bookingID, customerName, packageTitle, totalPrice)
	return m.send(toEmail, "", subject, text, html)
}

func (m *MailerSendMailer) SendStatusChanged(toEmail, toName, bookingID, packageTitle, newStatus string) error {
	subject := fmt.Sprintf("Booking %s %s", bookingID, newStatus)
	text := fmt.Sprintf("Hi %s,\n\nYour booking %s for %s is now %s.", toName, bookingID, packageTitle, newStatus)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your booking <b>%s</b> for <b>%s</b> is now <b>%s</b>.</p>", toName, bookingID, packageTitle, newStatus)
	return m.send(toEmail, toName, subject, text, html)
}
