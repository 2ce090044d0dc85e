package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sharelearning/internal/app/models"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-hub.done
	})
	return hub
}

func newTestClient(hub *Hub, topic string, buffer int) *Client {
	return &Client{hub: hub, send: make(chan []byte, buffer), topic: topic, logger: zerolog.Nop()}
}

func receive(t *testing.T, c *Client) models.ReactionEvent {
	t.Helper()
	select {
	case data := <-c.send:
		var event models.ReactionEvent
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
		return models.ReactionEvent{}
	}
}

func TestTopicsFor(t *testing.T) {
	assert.Equal(t, []string{TopicAll}, topicsFor(models.ReactionEvent{Type: models.EventReactionCreated}))
	assert.Equal(t, []string{TopicAll, "review:3"}, topicsFor(models.ReactionEvent{ReviewID: 3}))
	assert.Equal(t, []string{TopicAll, "prerequisite:9"}, topicsFor(models.ReactionEvent{CoursePrerequisiteID: 9}))
}

func TestHub_DeliversByTopic(t *testing.T) {
	hub := startHub(t)
	all := newTestClient(hub, TopicAll, 4)
	review := newTestClient(hub, ReviewTopic(7), 4)
	other := newTestClient(hub, ReviewTopic(8), 4)
	for _, c := range []*Client{all, review, other} {
		require.True(t, hub.subscribe(c))
	}

	hub.Publish(models.ReactionEvent{Type: models.EventReviewReactionCreated, ReviewID: 7, ReactionID: 1})

	assert.Equal(t, int64(7), receive(t, all).ReviewID)
	assert.Equal(t, int64(1), receive(t, review).ReactionID)
	assert.Never(t, func() bool { return len(other.send) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := startHub(t)
	slow := newTestClient(hub, TopicAll, 0)
	require.True(t, hub.subscribe(slow))
	require.Eventually(t, func() bool { return hub.ClientsCount(TopicAll) == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish(models.ReactionEvent{Type: models.EventReactionCreated, ReactionID: 1})

	require.Eventually(t, func() bool { return hub.ClientsCount(TopicAll) == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	c := newTestClient(hub, TopicAll, 1)
	require.True(t, hub.subscribe(c))
	cancel()
	<-hub.done

	_, open := <-c.send
	assert.False(t, open)
	assert.False(t, hub.subscribe(newTestClient(hub, TopicAll, 1)))
	hub.Publish(models.ReactionEvent{})
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://sharelearning.example"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.True(t, check(req))
	req.Header.Set("Origin", "https://sharelearning.example")
	assert.True(t, check(req))
	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(req))

	assert.True(t, originChecker(nil)(req))
}

func TestHandler_StreamsEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := startHub(t)
	router := gin.New()
	router.GET("/live", NewHandler(hub, nil, zerolog.Nop()).Subscribe)
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/live?course_prerequisite_id=5"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.Eventually(t, func() bool { return hub.ClientsCount(PrerequisiteTopic(5)) == 1 }, time.Second, 5*time.Millisecond)
	hub.Publish(models.ReactionEvent{Type: models.EventPrerequisiteReactionCreated, CoursePrerequisiteID: 5, ReactionID: 2})
	hub.Publish(models.ReactionEvent{Type: models.EventPrerequisiteReactionCreated, CoursePrerequisiteID: 5, ReactionID: 3})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	assert.Contains(t, string(raw), `"type":"prerequisite_reaction.created"`)
	assert.NotContains(t, string(raw), "\n")

	// events queued together still arrive as separate frames
	var event models.ReactionEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, models.EventPrerequisiteReactionCreated, event.Type)
	assert.Equal(t, int64(3), event.ReactionID)
}

func TestReactionEvent_TypeNames(t *testing.T) {
	tests := []struct {
		event models.ReactionEventType
		want  string
	}{
		{event: models.EventReactionCreated, want: "reaction.created"},
		{event: models.EventReviewReactionCreated, want: "review_reaction.created"},
		{event: models.EventPrerequisiteReactionCreated, want: "prerequisite_reaction.created"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			raw, err := json.Marshal(models.ReactionEvent{Type: tt.event, ReactionID: 1})
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"type":"`+tt.want+`"`)
		})
	}
}

func TestHandler_RejectsBadFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/live", NewHandler(NewHub(zerolog.Nop()), nil, zerolog.Nop()).Subscribe)

	for _, query := range []string{"?review_id=abc", "?review_id=0", "?review_id=1&course_prerequisite_id=2"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live"+query, nil))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, query)
	}
}
