package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

const charsetUTF8 = "UTF-8"

type sesClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SES is a Mail implementation backed by Amazon SES (v2 API).
type SES struct {
	client           sesClient
	defaultFrom      string
	configurationSet string
}

// SESConfig configures the SES implementation.
type SESConfig struct {
	// Region is the AWS region of the SES endpoint.
	Region string
	// Endpoint overrides the SES endpoint (localstack and friends).
	Endpoint string
	// AccessKey is the static access key ID; empty uses the default credential chain.
	AccessKey string
	// SecretKey is the static secret access key.
	SecretKey string
	// SessionToken is the optional session token.
	SessionToken string
	// From is the default sender when Message.From is empty.
	From string
	// ConfigurationSet is the optional SES configuration set name.
	ConfigurationSet string
}

// NewSES constructs an SES mail sender using the AWS default config chain.
func NewSES(ctx context.Context, cfg SESConfig) (*SES, error) {
	cfgOpts := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, cfg.SessionToken),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, err
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newSESWithClient(client, cfg.From, cfg.ConfigurationSet), nil
}

func newSESWithClient(client sesClient, from, configurationSet string) *SES {
	return &SES{
		client:           client,
		defaultFrom:      from,
		configurationSet: configurationSet,
	}
}

// Send delivers a message with a single SendEmail call.
func (s *SES) Send(ctx context.Context, msg Message) error {
	if len(msg.recipients()) == 0 {
		return ErrNoRecipients
	}
	from, err := msg.sender(s.defaultFrom)
	if err != nil {
		return err
	}

	body := &types.Body{}
	if msg.HTMLBody != "" {
		body.Html = &types.Content{Charset: aws.String(charsetUTF8), Data: aws.String(msg.HTMLBody)}
	}
	if msg.TextBody != "" || msg.HTMLBody == "" {
		body.Text = &types.Content{Charset: aws.String(charsetUTF8), Data: aws.String(msg.TextBody)}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses:  msg.To,
			CcAddresses:  msg.Cc,
			BccAddresses: msg.Bcc,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Charset: aws.String(charsetUTF8), Data: aws.String(msg.Subject)},
				Body:    body,
			},
		},
	}
	if s.configurationSet != "" {
		input.ConfigurationSetName = aws.String(s.configurationSet)
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: send email: %w", err)
	}
	return nil
}

// Close implements io.Closer for interface compatibility.
func (s *SES) Close() error {
	return nil
}
