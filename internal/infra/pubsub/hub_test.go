package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"servihub/internal/domain/entity"
	"servihub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChange(t *testing.T, table string, changeType entity.ChangeType, record map[string]any) *entity.RowChange {
	t.Helper()

	change, err := entity.NewRowChange(table, changeType, uuid.New(), record)
	require.NoError(t, err)

	return change
}

func receive(t *testing.T, sub service.Subscription) *entity.RowChange {
	t.Helper()

	select {
	case change := <-sub.Events():
		return change
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change")

		return nil
	}
}

func TestHub_PublishMatchesFilters(t *testing.T) {
	hub := NewHub(slog.Default())
	clientID := uuid.NewString()

	sub, err := hub.Subscribe(context.Background(), "service-requests:client:"+clientID,
		service.ChangeFilter{
			Table:  entity.TableServiceRequests,
			Types:  []entity.ChangeType{entity.ChangeInsert, entity.ChangeUpdate},
			Column: "client_id",
			Value:  clientID,
		},
	)
	require.NoError(t, err)
	defer sub.Close()

	mine := newChange(t, entity.TableServiceRequests, entity.ChangeInsert, map[string]any{"client_id": clientID})
	other := newChange(t, entity.TableServiceRequests, entity.ChangeInsert, map[string]any{"client_id": uuid.NewString()})
	deleted := newChange(t, entity.TableServiceRequests, entity.ChangeDelete, map[string]any{"client_id": clientID})

	require.NoError(t, hub.Publish(context.Background(), other))
	require.NoError(t, hub.Publish(context.Background(), deleted))
	require.NoError(t, hub.Publish(context.Background(), mine))

	got := receive(t, sub)
	assert.Equal(t, mine.RecordID, got.RecordID)

	select {
	case extra := <-sub.Events():
		t.Fatalf("unexpected change %s", extra.RecordID)
	default:
	}
}

func TestHub_CloseSubscriptionRemovesIt(t *testing.T) {
	hub := NewHub(slog.Default())

	sub, err := hub.Subscribe(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, hub.Subscribers())

	sub.Close()

	assert.Equal(t, 0, hub.Subscribers())
	<-sub.Done()
	assert.NoError(t, sub.Err())
}

func TestHub_FailEndsSubscriptionsWithError(t *testing.T) {
	hub := NewHub(slog.Default())
	connErr := errors.New("connection reset")

	sub, err := hub.Subscribe(context.Background(), "admin")
	require.NoError(t, err)

	hub.Fail(connErr)

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription not ended")
	}
	assert.ErrorIs(t, sub.Err(), connErr)

	// The hub keeps accepting subscriptions after a failure.
	again, err := hub.Subscribe(context.Background(), "admin")
	require.NoError(t, err)
	assert.NoError(t, again.Err())
}

func TestHub_ClosedRejectsSubscribe(t *testing.T) {
	hub := NewHub(slog.Default())
	require.NoError(t, hub.Close())

	_, err := hub.Subscribe(context.Background(), "admin")
	assert.ErrorIs(t, err, ErrHubClosed)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub(slog.Default())

	sub, err := hub.Subscribe(context.Background(), "admin")
	require.NoError(t, err)
	defer sub.Close()

	change := newChange(t, entity.TableOrders, entity.ChangeUpdate, nil)
	done := make(chan struct{})
	go func() {
		for range subscriptionBuffer + 10 {
			_ = hub.Publish(context.Background(), change)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscription")
	}
	assert.Len(t, sub.Events(), subscriptionBuffer)
}

type recordingPublisher struct {
	published []*entity.RowChange
	err       error
	closed    bool
}

func (p *recordingPublisher) Publish(_ context.Context, change *entity.RowChange) error {
	p.published = append(p.published, change)

	return p.err
}

func (p *recordingPublisher) Close() error {
	p.closed = true

	return nil
}

func TestFanoutPublisher_ExternalFailureDoesNotFail(t *testing.T) {
	local := &recordingPublisher{}
	external := &recordingPublisher{err: errors.New("topic unavailable")}
	publisher := NewFanoutPublisher(local, external, slog.Default())

	change := newChange(t, entity.TableWalletTransactions, entity.ChangeInsert, nil)
	require.NoError(t, publisher.Publish(context.Background(), change))

	assert.Len(t, local.published, 1)
	assert.Len(t, external.published, 1)

	require.NoError(t, publisher.Close())
	assert.True(t, external.closed)
}

func TestFanoutPublisher_WithoutLocal(t *testing.T) {
	external := &recordingPublisher{}
	publisher := NewFanoutPublisher(nil, external, slog.Default())

	require.NoError(t, publisher.Publish(context.Background(), newChange(t, entity.TableOrders, entity.ChangeInsert, nil)))
	require.NoError(t, publisher.Publish(context.Background(), nil))

	assert.Len(t, external.published, 1)
}

func TestPushMessage_DecodeChange(t *testing.T) {
	change := newChange(t, entity.TableDeliveries, entity.ChangeUpdate, map[string]any{"status": "picked_up"})

	var msg PushMessage
	raw, err := json.Marshal(change)
	require.NoError(t, err)
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)

	decoded, err := msg.DecodeChange()
	require.NoError(t, err)
	assert.Equal(t, change.RecordID, decoded.RecordID)
	assert.Equal(t, "picked_up", decoded.Field("status"))

	msg.Message.Data = "not base64!"
	_, err = msg.DecodeChange()
	assert.Error(t, err)
}

func TestPgListener_SubscribeBeforeReady(t *testing.T) {
	listener := NewPgListener(nil, NewHub(slog.Default()), "row_changes", slog.Default())

	_, err := listener.Subscribe(context.Background(), "admin")
	assert.ErrorIs(t, err, ErrListenerNotReady)
	assert.False(t, listener.Ready())
}

func TestPgListener_DispatchDropsPrivateColumns(t *testing.T) {
	hub := NewHub(slog.Default())
	listener := NewPgListener(nil, hub, "row_changes", slog.Default())
	courierID := uuid.NewString()

	sub, err := hub.Subscribe(context.Background(), "deliveries:delivery:"+courierID,
		service.ChangeFilter{Table: entity.TableDeliveries, Column: "delivery_person_id", Value: courierID},
	)
	require.NoError(t, err)
	defer sub.Close()

	payload := `{"table":"deliveries","type":"UPDATE","record_id":"` + uuid.NewString() + `",` +
		`"record":{"status":"accepted","delivery_person_id":"` + courierID + `","pickup_code":"042137"},` +
		`"old_record":{"status":"pending","delivery_person_id":null,"pickup_code":"042137"},` +
		`"at":"2026-10-18T10:00:00.000000Z"}`

	listener.dispatch(context.Background(), payload)

	change := receive(t, sub)
	assert.Equal(t, "accepted", change.Field("status"))
	assert.Empty(t, change.Field("pickup_code"))
	assert.Empty(t, change.OldField("pickup_code"))
	assert.NotContains(t, string(change.Record)+string(change.OldRecord), "042137")
}
