package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"docforensics/internal/port"
)

// SendEmailAPI is the subset of the SES v2 client used by the sender.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesSender struct {
	client      SendEmailAPI
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed AlertSender.
func NewSESSender(region, fromAddress, fromName string) (port.AlertSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return NewWithClient(sesv2.NewFromConfig(cfg), fromAddress, fromName), nil
}

// NewWithClient wraps an existing SES client.
func NewWithClient(client SendEmailAPI, fromAddress, fromName string) port.AlertSender {
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}
}

func (s *sesSender) SendRiskAlert(ctx context.Context, alert port.RiskAlert) error {
	subject := Subject(alert)
	htmlBody := buildAlertHTML(alert)
	textBody := BuildAlertText(alert)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{alert.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// Subject returns the alert email subject line.
func Subject(alert port.RiskAlert) string {
	return fmt.Sprintf("[%s] %s flagged for rejection (fraud score %d)", alert.RiskLevel, alert.FileName, alert.FraudScore)
}

// BuildAlertText renders the plain-text alert body.
func BuildAlertText(alert port.RiskAlert) string {
	return fmt.Sprintf("Document %s was analyzed and the recommended decision is %s.\n\nReport: %s\nFraud score: %d\nRisk level: %s\n\nSummary:\n%s\n",
		alert.FileName, alert.Decision, alert.ReportID, alert.FraudScore, alert.RiskLevel, alert.Summary)
}

func buildAlertHTML(alert port.RiskAlert) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #B91C1C;">Document flagged for rejection</h2>
  <p><strong>%s</strong> was analyzed and the recommended decision is <strong>%s</strong>.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Report</td><td>%s</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Fraud score</td><td>%d</td></tr>
    <tr><td style="padding: 4px 12px 4px 0; color: #666;">Risk level</td><td>%s</td></tr>
  </table>
  <p>%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Document Forensics - AI-assisted invoice and receipt review</p>
</body>
</html>`,
		html.EscapeString(alert.FileName), html.EscapeString(alert.Decision), html.EscapeString(alert.ReportID),
		alert.FraudScore, html.EscapeString(alert.RiskLevel), html.EscapeString(alert.Summary))
}
