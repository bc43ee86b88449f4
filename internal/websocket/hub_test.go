package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"go.uber.org/zap"
)

func receive(t *testing.T, ch <-chan []byte) Message {
	t.Helper()
	select {
	case data, ok := <-ch:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestHubDeliversToSubscribers(t *testing.T) {
	hub, _ := startHub(t)

	all := NewClient(hub, nil, 0)
	science := NewClient(hub, nil, 1)
	art := NewClient(hub, nil, 2)
	for _, c := range []*Client{all, science, art} {
		require.True(t, hub.Register(c))
	}

	q := domain.Question{ID: 5, Question: "Q", Answer: "A", Category: 1, Difficulty: 2}
	hub.Publish(domain.EventQuestionCreated, q)

	assert.Equal(t, Message{Type: domain.EventQuestionCreated, Payload: q}, receive(t, all.Send))
	assert.Equal(t, Message{Type: domain.EventQuestionCreated, Payload: q}, receive(t, science.Send))

	select {
	case <-art.Send:
		t.Fatal("client subscribed to another category received the event")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 3, hub.ClientCount())
}

func TestHubUnregister(t *testing.T) {
	hub, _ := startHub(t)

	c := NewClient(hub, nil, 0)
	require.True(t, hub.Register(c))
	hub.Unregister(c)

	_, ok := <-c.Send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubStop(t *testing.T) {
	hub, cancel := startHub(t)

	c := NewClient(hub, nil, 0)
	require.True(t, hub.Register(c))
	cancel()

	select {
	case _, ok := <-c.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("client not disconnected on stop")
	}

	assert.False(t, hub.Register(NewClient(hub, nil, 0)))
	hub.Unregister(c)
}

func TestClientSubscribed(t *testing.T) {
	assert.True(t, (&Client{CategoryID: 0}).Subscribed(4))
	assert.True(t, (&Client{CategoryID: 4}).Subscribed(4))
	assert.False(t, (&Client{CategoryID: 3}).Subscribed(4))
}
