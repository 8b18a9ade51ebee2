package mail

import (
	"context"
	"log/slog"

	"servihub/config"
	"servihub/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/pkg/errors"
)

const charsetUTF8 = "UTF-8"

var ErrInvalidMail = errors.New("mail needs a recipient and a subject")

// sesAPI is the subset of the SES v2 client used by the mailer.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesMailer struct {
	client sesAPI
	from   string
	logger *slog.Logger
}

// New returns an SES mailer, or a mailer that only logs when mail is disabled.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || !cfg.Mail.Enabled {
		logger.Info("Mail disabled, using log mailer")

		return NewLogMailer(logger), nil
	}

	return NewSESMailer(ctx, cfg.Mail, logger)
}

// NewSESMailer creates a mailer sending through Amazon SES v2.
func NewSESMailer(ctx context.Context, cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.From == "" {
		return nil, errors.New("mail sender address is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	logger.Info("SES mailer initialized",
		slog.String("region", cfg.Region),
		slog.String("from", cfg.From),
	)

	return newSESMailer(client, cfg.From, logger), nil
}

func newSESMailer(client sesAPI, from string, logger *slog.Logger) *sesMailer {
	return &sesMailer{
		client: client,
		from:   from,
		logger: logger,
	}
}

func (m *sesMailer) Send(ctx context.Context, mail *service.Mail) error {
	if mail == nil || mail.To == "" || mail.Subject == "" {
		return ErrInvalidMail
	}

	out, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{mail.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(mail.Subject), Charset: aws.String(charsetUTF8)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(mail.Body), Charset: aws.String(charsetUTF8)},
				},
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "ses send email")
	}

	m.logger.Info("Mail sent",
		slog.String("to", mail.To),
		slog.String("message_id", aws.ToString(out.MessageId)),
	)

	return nil
}

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that writes mails to the log instead of sending them.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(_ context.Context, mail *service.Mail) error {
	if mail == nil || mail.To == "" || mail.Subject == "" {
		return ErrInvalidMail
	}

	m.logger.Info("[LogMailer] Mail not sent, mail disabled",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}
