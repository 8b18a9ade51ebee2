package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "servihub/internal/delivery/context"
	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localPushSubscription = "projects/local/subscriptions/row-changes-sub"

// localHTTPPublisher implements ChangePublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage represents the structure of a Pub/Sub push message.
// Google Pub/Sub uses the same envelope when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeChange extracts the row change carried by the push message.
func (m *PushMessage) DecodeChange() (*entity.RowChange, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode push message data")
	}

	var change entity.RowChange
	if err := json.Unmarshal(data, &change); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal row change")
	}

	return &change, nil
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.ChangePublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Publish posts the row change to the local endpoint wrapped in a push envelope.
func (p *localHTTPPublisher) Publish(ctx context.Context, change *entity.RowChange) error {
	changeData, err := json.Marshal(change)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: localPushSubscription,
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(changeData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = changeAttributes(ctx, change)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Row change pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("table", change.Table),
		slog.String("record_id", change.RecordID.String()),
	)

	return nil
}

// Close is a no-op for HTTP publisher
func (p *localHTTPPublisher) Close() error {
	return nil
}
