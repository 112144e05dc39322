package ses

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/config"
	"github.com/Bhuvan-2005/exomart-ecommerce/internal/domain"
)

// Mailer sends transactional email with HTML and plain-text bodies.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

type mailer struct {
	client *sesv2.Client
	from   string
}

// NewMailer creates an SES mailer sending from cfg.SESFromEmail.
func NewMailer(cfg *config.Config) (Mailer, error) {
	if cfg.SESFromEmail == "" {
		return nil, fmt.Errorf("SES_FROM_EMAIL not set: %w", domain.ErrServiceNotConfigured)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SES: %w", err)
	}

	clientOpts := []func(*sesv2.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *sesv2.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}

	return &mailer{client: sesv2.NewFromConfig(awsCfg, clientOpts...), from: cfg.SESFromEmail}, nil
}

func (m *mailer) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		// A rejected message or unverified sender domain is a deployment
		// problem, not a transient send failure.
		var rejected *types.MessageRejected
		var unverified *types.MailFromDomainNotVerifiedException
		if errors.As(err, &rejected) || errors.As(err, &unverified) {
			return fmt.Errorf("email sender rejected: %w", domain.ErrServiceNotConfigured)
		}
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}
