package realtime

import (
	"testing"
	"time"

	"servihub/internal/domain/entity"
)

func TestBroker_SessionIsolation(t *testing.T) {
	broker := NewBroker()

	clientA := broker.Subscribe(entity.RoleClient, "session_a")
	clientB := broker.Subscribe(entity.RoleClient, "session_b")

	broker.Publish(entity.RoleClient, "session_a", Event{Type: EventState, State: StateSubscribed})

	select {
	case e := <-clientA:
		if e.State != StateSubscribed {
			t.Errorf("Expected subscribed, got %s", e.State)
		}
	case <-time.After(time.Second):
		t.Error("Session A timeout")
	}

	select {
	case <-clientB:
		t.Error("Session B should not receive event meant for session A")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroker_PublishToAll(t *testing.T) {
	broker := NewBroker()

	admin := broker.Subscribe(entity.RoleAdmin, "a")
	tech := broker.Subscribe(entity.RoleTechnician, "t")

	broker.PublishToAll(Event{Type: EventState, State: StateClosed})

	for name, ch := range map[string]chan Event{"admin": admin, "tech": tech} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Errorf("%s did not receive broadcast", name)
		}
	}
}

func TestBroker_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	broker := NewBroker()
	broker.Subscribe(entity.RoleVendor, "slow")

	for i := 0; i < clientBuffer+5; i++ {
		broker.Publish(entity.RoleVendor, "slow", Event{Type: EventChange})
	}

	stats := broker.Stats()
	if stats["dropped_events"] != 5 {
		t.Errorf("Expected 5 dropped events, got %d", stats["dropped_events"])
	}
	if stats["vendor_clients"] != 1 {
		t.Errorf("Expected 1 vendor client, got %d", stats["vendor_clients"])
	}
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	broker := NewBroker()
	ch := broker.Subscribe(entity.RoleDelivery, "d")

	broker.Unsubscribe(entity.RoleDelivery, "d")

	if _, ok := <-ch; ok {
		t.Error("Expected closed channel")
	}
	if _, ok := broker.Stats()["delivery_clients"]; ok {
		t.Error("Expected no delivery clients")
	}
}
