package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"

	"github.com/rudhirsetu/website-backend/internal/domain"
	"github.com/wneessen/go-mail"
)

// Client sends transactional mail for the site (contact form notifications
// and acknowledgements).
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates an email client from SMTP settings.
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends a single HTML email.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// SendContactNotification notifies the organisation inbox about a new
// contact form submission.
func (c *Client) SendContactNotification(to string, contact domain.Contact) error {
	subject := fmt.Sprintf("New contact form submission — %s", contact.Name)
	htmlBody := buildNotificationHTML(contact)

	return c.SendEmail(to, subject, htmlBody)
}

// SendContactAcknowledgement thanks the sender and quotes their reference id.
func (c *Client) SendContactAcknowledgement(contact domain.Contact) error {
	subject := fmt.Sprintf("We received your message — %s", c.fromName)
	htmlBody := buildAcknowledgementHTML(contact, c.fromName)

	return c.SendEmail(contact.Email, subject, htmlBody)
}

func buildNotificationHTML(contact domain.Contact) string {
	phone := contact.Phone
	if phone == "" {
		phone = "-"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Contact Form Submission</title></head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background-color: #b91c1c; padding: 30px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 24px;">New Contact Form Submission</h1>
						</td>
					</tr>
					<tr>
						<td style="padding: 30px;">
							<table width="100%%" cellpadding="0" cellspacing="0">
								<tr>
									<td style="padding: 8px 0;"><strong>Reference:</strong></td>
									<td style="padding: 8px 0; text-align: right;">%s</td>
								</tr>
								<tr>
									<td style="padding: 8px 0;"><strong>Name:</strong></td>
									<td style="padding: 8px 0; text-align: right;">%s</td>
								</tr>
								<tr>
									<td style="padding: 8px 0;"><strong>Email:</strong></td>
									<td style="padding: 8px 0; text-align: right;">%s</td>
								</tr>
								<tr>
									<td style="padding: 8px 0;"><strong>Phone:</strong></td>
									<td style="padding: 8px 0; text-align: right;">%s</td>
								</tr>
							</table>
							<div style="margin-top: 20px; padding: 20px; background-color: #f8f9fa; border-left: 4px solid #b91c1c;">
								<p style="margin: 0; color: #333; white-space: pre-wrap;">%s</p>
							</div>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		contact.ReferenceID,
		contact.Name,
		contact.Email,
		phone,
		contact.Message,
	)
}

func buildAcknowledgementHTML(contact domain.Contact, orgName string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Message Received</title></head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background-color: #b91c1c; padding: 30px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 24px;">Thank you, %s!</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0;">We have received your message</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 30px;">
							<p style="color: #333;">Our team at %s will get back to you as soon as possible, usually within 2 working days.</p>
							<p style="color: #333;">Your reference number is <strong>%s</strong>. Please quote it in any follow-up.</p>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8f9fa; padding: 20px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0; color: #999; font-size: 12px;">This is an automated message, please do not reply directly.</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		contact.Name,
		orgName,
		contact.ReferenceID,
	)
}
