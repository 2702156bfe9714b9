package broadcast

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/theoremus-urban-solutions/bus-tracker/metrics"
)

var (
	// ErrSubscriberExists is returned when Subscribe reuses an id.
	ErrSubscriberExists = errors.New("subscriber id already exists")

	// ErrSubscriberNotFound is returned when Unsubscribe is given an unknown id.
	ErrSubscriberNotFound = errors.New("subscriber id not found")

	// ErrHubClosed is returned for operations on a closed hub.
	ErrHubClosed = errors.New("hub is closed")
)

// Stats is a snapshot of hub delivery counters.
type Stats struct {
	Subscribers    int
	TotalPublished uint64
	TotalSent      uint64
	TotalDropped   uint64
}

// Hub fans published messages out to all subscriber channels.
type Hub struct {
	metrics *metrics.Collector

	mu          sync.RWMutex
	subscribers map[string]chan<- []byte
	closed      bool

	published atomic.Uint64
	sent      atomic.Uint64
	dropped   atomic.Uint64
}

// NewHub creates an empty hub. The metrics collector may be nil.
func NewHub(m *metrics.Collector) *Hub {
	return &Hub{
		metrics:     m,
		subscribers: make(map[string]chan<- []byte),
	}
}

// Subscribe registers a channel to receive every subsequent publish.
// Messages published before the call are not replayed.
func (h *Hub) Subscribe(id string, ch chan<- []byte) error {
	if ch == nil {
		return errors.New("subscriber channel cannot be nil")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	if _, exists := h.subscribers[id]; exists {
		return ErrSubscriberExists
	}
	h.subscribers[id] = ch
	if h.metrics != nil {
		h.metrics.ConnectedClients.Set(float64(len(h.subscribers)))
	}
	return nil
}

// Unsubscribe removes a subscriber. The caller owns the channel and is
// responsible for draining or closing it afterwards.
func (h *Hub) Unsubscribe(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	if _, exists := h.subscribers[id]; !exists {
		return ErrSubscriberNotFound
	}
	delete(h.subscribers, id)
	if h.metrics != nil {
		h.metrics.ConnectedClients.Set(float64(len(h.subscribers)))
	}
	return nil
}

// Publish offers msg to every subscriber currently connected. It never
// blocks: a full subscriber channel drops this message for that
// subscriber only.
func (h *Hub) Publish(msg []byte) {
	h.published.Add(1)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- msg:
			h.sent.Add(1)
			if h.metrics != nil {
				h.metrics.BroadcastSent.Inc()
			}
		default:
			h.dropped.Add(1)
			if h.metrics != nil {
				h.metrics.BroadcastDropped.Inc()
			}
		}
	}
}

// Subscribers returns the number of currently connected subscribers.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Stats returns a snapshot of the delivery counters.
func (h *Hub) Stats() Stats {
	h.mu.RLock()
	n := len(h.subscribers)
	h.mu.RUnlock()
	return Stats{
		Subscribers:    n,
		TotalPublished: h.published.Load(),
		TotalSent:      h.sent.Load(),
		TotalDropped:   h.dropped.Load(),
	}
}

// Close drops all subscribers and rejects further Subscribe/Unsubscribe
// calls. Publish on a closed hub is a no-op delivery to nobody.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	h.closed = true
	h.subscribers = make(map[string]chan<- []byte)
	if h.metrics != nil {
		h.metrics.ConnectedClients.Set(0)
	}
	return nil
}
