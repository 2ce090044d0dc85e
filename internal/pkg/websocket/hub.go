package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/sharelearning/internal/app/models"
)

// TopicAll receives every reaction event
const TopicAll = "all"

// ReviewTopic receives the reactions attached to one review
func ReviewTopic(reviewID int64) string {
	return fmt.Sprintf("review:%d", reviewID)
}

// PrerequisiteTopic receives the reactions attached to one course prerequisite
func PrerequisiteTopic(coursePrerequisiteID int64) string {
	return fmt.Sprintf("prerequisite:%d", coursePrerequisiteID)
}

// topicsFor lists the topics an event is delivered to
func topicsFor(event models.ReactionEvent) []string {
	topics := []string{TopicAll}
	if event.ReviewID > 0 {
		topics = append(topics, ReviewTopic(event.ReviewID))
	}
	if event.CoursePrerequisiteID > 0 {
		topics = append(topics, PrerequisiteTopic(event.CoursePrerequisiteID))
	}
	return topics
}

// eventBuffer bounds the events waiting for the hub loop; Publish drops beyond it
const eventBuffer = 64

// Hub maintains the set of subscribed clients and fans reaction events out to them.
// All client bookkeeping happens on the goroutine running Run.
type Hub struct {
	// Subscribed clients organized by topic
	clients map[string]map[*Client]struct{}

	events     chan models.ReactionEvent
	register   chan *Client
	unregister chan *Client

	// done is closed when Run returns
	done chan struct{}

	mu     sync.RWMutex
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		events:     make(chan models.ReactionEvent, eventBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations and events until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case event := <-h.events:
			h.broadcast(event)
		}
	}
}

// Publish queues event for delivery without blocking the caller.
// Events are dropped when the hub is stopped or saturated.
func (h *Hub) Publish(event models.ReactionEvent) {
	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.events <- event:
	default:
		h.logger.Warn().Str("type", string(event.Type)).Msg("Reaction feed saturated, event dropped")
	}
}

// ClientsCount returns the number of clients subscribed to topic
func (h *Hub) ClientsCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// subscribe hands client to the hub loop. It reports false once the hub has stopped.
func (h *Hub) subscribe(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave hands client back to the hub loop for removal
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.topic]; !ok {
		h.clients[client.topic] = make(map[*Client]struct{})
	}
	h.clients[client.topic][client] = struct{}{}

	h.logger.Info().
		Str("topic", client.topic).
		Str("addr", client.remoteAddr()).
		Msg("Feed client registered")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

// removeLocked must be called with mu held. It is a no-op for unknown clients.
func (h *Hub) removeLocked(client *Client) {
	clients, ok := h.clients[client.topic]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.clients, client.topic)
	}

	h.logger.Info().
		Str("topic", client.topic).
		Str("addr", client.remoteAddr()).
		Msg("Feed client unregistered")
}

func (h *Hub) broadcast(event models.ReactionEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", string(event.Type)).Msg("Failed to marshal reaction event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0
	for _, topic := range topicsFor(event) {
		for client := range h.clients[topic] {
			select {
			case client.send <- data:
				delivered++
			default:
				// slow consumer; its write pump exits once send is closed
				h.removeLocked(client)
			}
		}
	}

	h.logger.Debug().
		Str("type", string(event.Type)).
		Int("delivered", delivered).
		Msg("Reaction event broadcast")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, clients := range h.clients {
		for client := range clients {
			h.removeLocked(client)
		}
	}
}
