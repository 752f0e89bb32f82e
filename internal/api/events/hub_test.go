package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wagneradl/mission-control/internal/domain"
)

// MockClient stands in for a WebSocket connection.
type MockClient struct {
	SendChan chan []byte
}

func (m *MockClient) getSendChannel() chan []byte {
	return m.SendChan
}

func (m *MockClient) close() {}

func receive(t *testing.T, ch chan []byte) []byte {
	t.Helper()
	select {
	case data, ok := <-ch:
		require.True(t, ok, "send channel closed")
		return data
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	defer hub.Stop()

	client := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(client)

	hub.Publish(domain.ChangeEvent{Table: "tasks", Action: domain.ActionCreated, ID: "t1"})

	var event domain.ChangeEvent
	require.NoError(t, json.Unmarshal(receive(t, client.SendChan), &event))
	assert.Equal(t, "tasks", event.Table)
	assert.Equal(t, domain.ActionCreated, event.Action)
	assert.Equal(t, "t1", event.ID)
}

func TestHubFanOut(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	defer hub.Stop()

	first := &MockClient{SendChan: make(chan []byte, 8)}
	second := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(first)
	hub.Register(second)

	hub.Publish(domain.ChangeEvent{Table: "contacts", Action: domain.ActionDeleted, ID: "c1"})

	for _, client := range []*MockClient{first, second} {
		var event domain.ChangeEvent
		require.NoError(t, json.Unmarshal(receive(t, client.SendChan), &event))
		assert.Equal(t, "contacts", event.Table)
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	defer hub.Stop()

	// A full send buffer marks the client as slow on the next broadcast.
	slow := &MockClient{SendChan: make(chan []byte, 1)}
	slow.SendChan <- []byte("stale")
	healthy := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(slow)
	hub.Register(healthy)

	hub.Publish(domain.ChangeEvent{Table: "tasks", Action: domain.ActionUpdated, ID: "t1"})
	receive(t, healthy.SendChan)

	hub.mu.RLock()
	_, stillRegistered := hub.clients[slow]
	hub.mu.RUnlock()
	assert.False(t, stillRegistered)

	// Drain the stale entry; the channel must then report closed.
	<-slow.SendChan
	select {
	case _, ok := <-slow.SendChan:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("expected slow client channel to be closed")
	}
}

func TestHubRegisterAfterStop(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	hub.Stop()

	// Neither call may block once the hub is gone.
	done := make(chan struct{})
	go func() {
		client := &MockClient{SendChan: make(chan []byte, 1)}
		hub.Register(client)
		hub.Unregister(client)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("register/unregister blocked after hub stop")
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()
	defer hub.Stop()

	client := &MockClient{SendChan: make(chan []byte, 8)}
	hub.Register(client)
	hub.Unregister(client)

	select {
	case _, ok := <-client.SendChan:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("expected channel close on unregister")
	}
}
