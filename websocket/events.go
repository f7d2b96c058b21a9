package websocket

import (
	"encoding/json"
	"log"
)

// Message is the frame pushed to the UI after a mutation. It carries only
// the notification name; the UI re-fetches whatever it renders.
type Message struct {
	Type string `json:"type"`
}

// Observer adapts the hub to the core's RenderObserver interface.
type Observer struct {
	hub *Hub
}

func NewObserver(hub *Hub) *Observer {
	return &Observer{hub: hub}
}

func (o *Observer) Notify(event string) {
	data, err := json.Marshal(Message{Type: event})
	if err != nil {
		log.Printf("[WS] marshal notification: %v", err)
		return
	}
	o.hub.Broadcast(data)
}
