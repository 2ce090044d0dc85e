package websocket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// MsgBadSubscription answers a feed request with an unusable filter
const MsgBadSubscription = "params are not correct"

// sendBuffer is the per-client queue of undelivered events
const sendBuffer = 256

// Handler upgrades feed requests and subscribes them to the hub
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a feed handler. An empty allowedOrigins accepts any origin.
func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// topicFromQuery picks the subscription topic. review_id and course_prerequisite_id are
// mutually exclusive; with neither the client gets every event.
func topicFromQuery(c *gin.Context) (string, bool) {
	reviewID, hasReview := c.GetQuery("review_id")
	prerequisiteID, hasPrerequisite := c.GetQuery("course_prerequisite_id")

	switch {
	case hasReview && hasPrerequisite:
		return "", false
	case hasReview:
		id, err := strconv.ParseInt(reviewID, 10, 64)
		if err != nil || id <= 0 {
			return "", false
		}
		return ReviewTopic(id), true
	case hasPrerequisite:
		id, err := strconv.ParseInt(prerequisiteID, 10, 64)
		if err != nil || id <= 0 {
			return "", false
		}
		return PrerequisiteTopic(id), true
	default:
		return TopicAll, true
	}
}

// Subscribe handles GET /reactions/live
func (h *Handler) Subscribe(c *gin.Context) {
	topic, ok := topicFromQuery(c)
	if !ok {
		c.String(http.StatusUnprocessableEntity, MsgBadSubscription)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the HTTP error
		h.logger.Warn().Err(err).Str("topic", topic).Msg("Failed to upgrade feed connection")
		return
	}

	client := &Client{
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		topic:  topic,
		logger: h.logger,
	}
	if !h.hub.subscribe(client) {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
