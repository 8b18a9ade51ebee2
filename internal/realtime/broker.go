package realtime

import (
	"sync"

	"servihub/internal/domain/entity"
)

const clientBuffer = 32

// Broker fans session events out to stream clients, segmented by role then session.
// Sends never block: a client whose buffer is full misses the event.
type Broker struct {
	clients map[entity.Role]map[string]chan Event
	dropped uint64
	mutex   sync.RWMutex
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{
		clients: make(map[entity.Role]map[string]chan Event),
	}
}

// Subscribe registers a client channel for one session.
func (b *Broker) Subscribe(role entity.Role, sessionID string) chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	ch := make(chan Event, clientBuffer)

	if _, exists := b.clients[role]; !exists {
		b.clients[role] = make(map[string]chan Event)
	}
	b.clients[role][sessionID] = ch

	return ch
}

// Unsubscribe removes and closes the client channel of a session.
func (b *Broker) Unsubscribe(role entity.Role, sessionID string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clients, exists := b.clients[role]
	if !exists {
		return
	}

	if ch, ok := clients[sessionID]; ok {
		delete(clients, sessionID)
		close(ch)
	}
	if len(clients) == 0 {
		delete(b.clients, role)
	}
}

// Publish sends an event to one session.
func (b *Broker) Publish(role entity.Role, sessionID string, event Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if ch, ok := b.clients[role][sessionID]; ok {
		b.send(ch, event)
	}
}

// PublishToRole sends an event to every session of a role.
func (b *Broker) PublishToRole(role entity.Role, event Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, ch := range b.clients[role] {
		b.send(ch, event)
	}
}

// PublishToAll sends an event to every session.
func (b *Broker) PublishToAll(event Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	for _, clients := range b.clients {
		for _, ch := range clients {
			b.send(ch, event)
		}
	}
}

func (b *Broker) send(ch chan Event, event Event) {
	select {
	case ch <- event:
	default:
		b.dropped++
	}
}

// Stats returns the number of connected sessions per role and the dropped event count.
func (b *Broker) Stats() map[string]int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	stats := map[string]int{"dropped_events": int(b.dropped)}
	for role, clients := range b.clients {
		stats[role.String()+"_clients"] = len(clients)
	}

	return stats
}
