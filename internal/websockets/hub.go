package websockets

import (
	"encoding/json"
	"log/slog"
)

// EventType identifies a push event sent to admin dashboards. The dashboards
// still poll the REST endpoints; the socket just lets them react faster.
type EventType string

const (
	EventOrderNew        EventType = "order.new"
	EventOrderStatus     EventType = "order.status"
	EventNotificationNew EventType = "notification.new"
)

// Event is the wire format for hub broadcasts.
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

type Hub struct {
	clients map[*Client]bool

	register chan *Client

	unregister chan *Client

	broadcast chan []byte
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// Publish broadcasts an event to every connected client. Safe to call from
// any goroutine; drops the event if the hub's buffer is full rather than
// blocking a request handler.
func (h *Hub) Publish(eventType EventType, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		slog.Error("failed to marshal event", "type", eventType, "error", err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		slog.Warn("dropping event, hub broadcast buffer full", "type", eventType)
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}
