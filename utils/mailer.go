package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/badoux/checkmail"
	"github.com/getsentry/sentry-go"
	"gopkg.in/gomail.v2"

	"leadhub/config"
)

type EmailData struct {
	Subject   string
	To        []string
	Template  string
	Data      interface{}
	Year      int
	FromName  string
	FromEmail string
}

// Embedded email templates
var emailTemplates = map[string]string{
	"agent_invitation": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>You were added as an agent</h2>
    </div>

    <div class="content">
        <p>Hello {{.FirstName}},</p>
        <p>{{.OrganiserName}} invited you to work on their leads as an agent.</p>
        <p>Your username is <strong>{{.Username}}</strong>. Please reset your
        password before logging in for the first time.</p>
    </div>

    <div class="footer">
        <p>If you were not expecting this invitation, you can safely ignore this email.</p>
        <p>&copy; {{.Year}} LeadHub. All rights reserved.</p>
    </div>
</body>
</html>`,

	"lead_created": `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { color: #2c3e50; border-bottom: 1px solid #eee; padding-bottom: 10px; }
        .content { margin: 20px 0; }
        .footer { margin-top: 30px; font-size: 12px; color: #7f8c8d; text-align: center; }
    </style>
</head>
<body>
    <div class="header">
        <h2>A lead has been created</h2>
    </div>

    <div class="content">
        <p>Hello,</p>
        <p>{{.LeadName}} was just added to your workspace. Go to the site to see the new lead.</p>
    </div>

    <div class="footer">
        <p>&copy; {{.Year}} LeadHub. All rights reserved.</p>
    </div>
</body>
</html>`,
}

// SendEmail renders an embedded template and delivers it over SMTP. Sending
// is best effort: callers treat a returned error as log-and-continue, never
// as a reason to roll back the write that triggered it.
func SendEmail(data EmailData) error {
	if config.AppConfig.SMTPHost == "" {
		// Mail delivery not configured (development, tests)
		return nil
	}

	tmplText, ok := emailTemplates[data.Template]
	if !ok {
		return fmt.Errorf("unknown email template %q", data.Template)
	}

	for _, recipient := range data.To {
		if err := checkmail.ValidateFormat(recipient); err != nil {
			return fmt.Errorf("invalid recipient %q: %w", recipient, err)
		}
	}

	tmpl, err := template.New(data.Template).Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, mergeTemplateData(data)); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", config.AppConfig.FromEmail, config.AppConfig.FromName)
	m.SetHeader("To", data.To...)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		sentry.WithScope(func(s *sentry.Scope) {
			s.SetTag("template", data.Template)
			sentry.CaptureException(err)
		})
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func mergeTemplateData(data EmailData) map[string]interface{} {
	merged := map[string]interface{}{
		"Subject": data.Subject,
		"Year":    time.Now().Year(),
	}
	if fields, ok := data.Data.(map[string]interface{}); ok {
		for k, v := range fields {
			merged[k] = v
		}
	}
	return merged
}

// SendAgentInvitation notifies a freshly created agent. Failures are
// swallowed by the caller; agent creation has already committed.
func SendAgentInvitation(email, firstName, username, organiserName string) error {
	return SendEmail(EmailData{
		Subject:  "You are invited to LeadHub",
		To:       []string{email},
		Template: "agent_invitation",
		Data: map[string]interface{}{
			"FirstName":     firstName,
			"Username":      username,
			"OrganiserName": organiserName,
		},
	})
}

// SendLeadCreatedNotice tells the organiser's inbox a lead was added.
func SendLeadCreatedNotice(email, leadName string) error {
	return SendEmail(EmailData{
		Subject:  "A lead has been created",
		To:       []string{email},
		Template: "lead_created",
		Data: map[string]interface{}{
			"LeadName": leadName,
		},
	})
}
