// internal/email/ses.go
package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the slice of the SES client used by the provider.
type SESAPI interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SESProvider delivers mail through Amazon SES. Selected over SMTP when
// integrations.aws.ses.enabled is set.
type SESProvider struct {
	client SESAPI
}

func NewSESProvider(client SESAPI) *SESProvider {
	return &SESProvider{client: client}
}

func (p *SESProvider) Name() string { return "ses" }

func (p *SESProvider) Send(ctx context.Context, from, to, subject, htmlBody string) (string, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(fmt.Sprintf("Moxie Launch Assistant <%s>", from)),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(htmlBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	output, err := p.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("ses send failed: %w", err)
	}
	return aws.ToString(output.MessageId), nil
}
