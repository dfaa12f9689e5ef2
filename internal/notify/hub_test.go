package notify

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConn(userID int64, buf int) *connection {
	return &connection{
		userID: userID,
		send:   make(chan []byte, buf),
		done:   make(chan struct{}),
	}
}

func TestSendToUserOffline(t *testing.T) {
	h := NewHub()
	assert.False(t, h.SendToUser(1, &Event{Type: EventLeadCreated}))
}

func TestSendToUserDelivers(t *testing.T) {
	h := NewHub()
	c := newTestConn(1, 8)
	h.register(c)

	require.True(t, h.SendToUser(1, &Event{
		Type:    EventLeadCreated,
		Payload: map[string]any{"lead_id": 7},
	}))

	var ev Event
	require.NoError(t, json.Unmarshal(<-c.send, &ev))
	assert.Equal(t, EventLeadCreated, ev.Type)
}

func TestSendToUserSlowClientDropsEvent(t *testing.T) {
	h := NewHub()
	c := newTestConn(1, 1)
	h.register(c)

	assert.True(t, h.SendToUser(1, &Event{Type: EventLeadCreated}))
	// buffer full: the event is dropped, never blocked on
	assert.False(t, h.SendToUser(1, &Event{Type: EventLeadCreated}))
}

func TestReconnectReplacesConnection(t *testing.T) {
	h := NewHub()
	c1 := newTestConn(1, 8)
	c2 := newTestConn(1, 8)
	h.register(c1)
	h.register(c2)

	// the replaced connection is told to shut down
	select {
	case <-c1.done:
	default:
		t.Fatal("replaced connection was not retired")
	}

	require.True(t, h.SendToUser(1, &Event{Type: EventLeadStatusChanged}))
	assert.Len(t, c2.send, 1)
	assert.Empty(t, c1.send)

	// the old connection's teardown must not evict its replacement
	h.unregister(c1)
	assert.True(t, h.SendToUser(1, &Event{Type: EventLeadStatusChanged}))

	h.unregister(c2)
	assert.False(t, h.SendToUser(1, &Event{Type: EventLeadStatusChanged}))
}

// A vendor refreshing their dashboard while leads arrive: replacement
// registrations racing concurrent sends must never panic.
func TestReconnectDuringConcurrentSends(t *testing.T) {
	h := NewHub()
	h.register(newTestConn(1, 1))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				h.SendToUser(1, &Event{Type: EventLeadCreated})
			}
		}()
	}
	for i := 0; i < 200; i++ {
		h.register(newTestConn(1, 1))
	}
	wg.Wait()
}
