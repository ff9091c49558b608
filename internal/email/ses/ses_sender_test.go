package ses_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docforensics/internal/email/ses"
	"docforensics/internal/port"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	return &sesv2.SendEmailOutput{}, f.err
}

func sampleAlert() port.RiskAlert {
	return port.RiskAlert{
		ToEmail:    "fraud-team@example.com",
		ReportID:   "FR-1760400000000",
		FileName:   "invoice <42>.pdf",
		FraudScore: 82,
		RiskLevel:  "Critical",
		Decision:   "Reject",
		Summary:    "Totals were edited after printing.",
	}
}

func TestSESSender_SendRiskAlert(t *testing.T) {
	fake := &fakeSES{}
	sender := ses.NewWithClient(fake, "alerts@example.com", "Document Forensics")

	require.NoError(t, sender.SendRiskAlert(context.Background(), sampleAlert()))

	require.NotNil(t, fake.input)
	assert.Equal(t, "Document Forensics <alerts@example.com>", aws.ToString(fake.input.FromEmailAddress))
	assert.Equal(t, []string{"fraud-team@example.com"}, fake.input.Destination.ToAddresses)

	msg := fake.input.Content.Simple
	assert.Equal(t, "[Critical] invoice <42>.pdf flagged for rejection (fraud score 82)", aws.ToString(msg.Subject.Data))
	assert.Contains(t, aws.ToString(msg.Body.Text.Data), "Fraud score: 82")
	assert.Contains(t, aws.ToString(msg.Body.Html.Data), "invoice &lt;42&gt;.pdf")
}

func TestSESSender_Error(t *testing.T) {
	sender := ses.NewWithClient(&fakeSES{err: errors.New("throttled")}, "a@example.com", "A")

	err := sender.SendRiskAlert(context.Background(), sampleAlert())
	assert.ErrorContains(t, err, "throttled")
}
