package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/aws/aws-sdk-go/aws"         //nolint:staticcheck // TODO: Migrate to aws-sdk-go-v2
	"github.com/aws/aws-sdk-go/aws/session" //nolint:staticcheck
	"github.com/aws/aws-sdk-go/service/ses" //nolint:staticcheck
	"github.com/tokentide/tokentide-api/internal/config"
)

type EmailService struct {
	cfg       *config.Config
	sesClient *ses.SES
}

func NewEmailService(cfg *config.Config) *EmailService {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWSRegion),
	}))

	return &EmailService{
		cfg:       cfg,
		sesClient: ses.New(sess),
	}
}

const welcomeHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to TokenTide</title>
</head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #0ea5e9 0%, #6366f1 100%);
                padding: 30px; border-radius: 10px 10px 0 0; text-align: center;">
        <h1 style="color: white; margin: 0;">🌊 TokenTide</h1>
    </div>
    <div style="background-color: white; padding: 40px; border-radius: 0 0 10px 10px;
                box-shadow: 0 2px 10px rgba(0,0,0,0.1);">
        <h2 style="color: #333;">You're on the list!</h2>
        <p style="color: #666; line-height: 1.6;">
            Thanks for subscribing to TokenTide updates. We'll let you know when new
            content tools, templates, and features ship.
        </p>
        <div style="text-align: center; margin: 30px 0;">
            <a href="{{.DashboardURL}}"
               style="background: linear-gradient(135deg, #0ea5e9 0%, #6366f1 100%);
                      color: white; padding: 15px 40px; text-decoration: none;
                      border-radius: 5px; font-weight: bold; display: inline-block;">
                Open TokenTide
            </a>
        </div>
        <p style="color: #999; font-size: 12px;">
            If you didn't subscribe to TokenTide, you can safely ignore this email.
        </p>
    </div>
    <div style="text-align: center; padding: 20px; color: #999; font-size: 12px;">
        <p>© 2026 TokenTide. All rights reserved.</p>
    </div>
</body>
</html>`

// SendWelcomeEmail sends the post-subscription welcome email. Failures are
// the caller's to log; a subscription is recorded whether or not the email
// goes out.
func (s *EmailService) SendWelcomeEmail(email string) error {
	tmpl, err := template.New("welcome").Parse(welcomeHTMLTemplate)
	if err != nil {
		return err
	}

	var htmlBody bytes.Buffer
	err = tmpl.Execute(&htmlBody, map[string]string{
		"DashboardURL": s.cfg.BaseURL + "/dashboard",
	})
	if err != nil {
		return err
	}

	textBody := fmt.Sprintf(`You're on the list!

Thanks for subscribing to TokenTide updates. We'll let you know when new content tools, templates, and features ship.

Open TokenTide: %s/dashboard

If you didn't subscribe to TokenTide, you can safely ignore this email.

---
TokenTide
AI-powered content for crypto projects
`, s.cfg.BaseURL)

	input := &ses.SendEmailInput{
		Source: aws.String(s.cfg.EmailFrom),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(email)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{
				Data:    aws.String("Welcome to TokenTide 🌊"),
				Charset: aws.String("UTF-8"),
			},
			Body: &ses.Body{
				Html: &ses.Content{
					Data:    aws.String(htmlBody.String()),
					Charset: aws.String("UTF-8"),
				},
				Text: &ses.Content{
					Data:    aws.String(textBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	_, err = s.sesClient.SendEmail(input)
	return err
}
