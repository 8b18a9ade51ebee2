package mail

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"servihub/config"
	"servihub/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}

	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	mailer := newSESMailer(client, "support@servihub.test", slog.Default())

	err := mailer.Send(context.Background(), &service.Mail{
		To:      "client@example.com",
		Subject: "Ticket resolved",
		Body:    "Your ticket was resolved.",
	})
	require.NoError(t, err)
	require.Len(t, client.inputs, 1)

	input := client.inputs[0]
	assert.Equal(t, "support@servihub.test", aws.ToString(input.FromEmailAddress))
	assert.Equal(t, []string{"client@example.com"}, input.Destination.ToAddresses)
	assert.Equal(t, "Ticket resolved", aws.ToString(input.Content.Simple.Subject.Data))
	assert.Equal(t, "Your ticket was resolved.", aws.ToString(input.Content.Simple.Body.Text.Data))
}

func TestSESMailer_SendErrors(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	mailer := newSESMailer(client, "support@servihub.test", slog.Default())

	assert.ErrorIs(t, mailer.Send(context.Background(), &service.Mail{Subject: "x"}), ErrInvalidMail)
	assert.Empty(t, client.inputs)

	err := mailer.Send(context.Background(), &service.Mail{To: "a@b.c", Subject: "x"})
	assert.ErrorContains(t, err, "throttled")
}

func TestNew_DisabledUsesLogMailer(t *testing.T) {
	mailer, err := New(context.Background(), &config.Config{}, slog.Default())
	require.NoError(t, err)
	assert.IsType(t, &logMailer{}, mailer)
	assert.NoError(t, mailer.Send(context.Background(), &service.Mail{To: "a@b.c", Subject: "x"}))
}
