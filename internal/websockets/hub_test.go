package websockets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublish(t *testing.T) {
	hub := NewHub()

	hub.Publish(EventOrderNew, map[string]int{"id": 42})

	var event Event
	require.NoError(t, json.Unmarshal(<-hub.broadcast, &event))
	assert.Equal(t, EventOrderNew, event.Type)
}

func TestHubPublish_NeverBlocks(t *testing.T) {
	hub := NewHub()

	// Nothing is draining the hub; publishing past the buffer must drop
	// events instead of stalling the request handler.
	for i := 0; i < 100; i++ {
		hub.Publish(EventNotificationNew, map[string]int{"i": i})
	}

	assert.Len(t, hub.broadcast, cap(hub.broadcast))
}

func TestUpgraderCheckOrigin(t *testing.T) {
	upgrader := NewUpgrader([]string{"http://localhost:5173"})

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"allowed origin", "http://localhost:5173", true},
		{"no origin header", "", true},
		{"unknown origin", "http://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, upgrader.CheckOrigin(req))
		})
	}
}
