package ws

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Event is the JSON message pushed to connected dashboard clients when a new
// prediction is stored.
type Event struct {
	Event        string `json:"event"`
	PredictionID string `json:"prediction_id"`
	RiskLevel    string `json:"risk_level"`
}

// Client is one WebSocket connection.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub tracks connected dashboard clients and broadcasts events to all of them.
// It is constructed in main and injected wherever broadcasts originate.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// BroadcastEvent marshals the event and queues it for every connected client.
func (h *Hub) BroadcastEvent(ev Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("ws: marshal event: %v", err)
		return
	}
	h.Broadcast <- b
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}
