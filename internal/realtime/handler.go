package realtime

import (
	"virtual-classroom-be/internal/entity"

	"github.com/gofiber/websocket/v2"
)

// ServeWs wires an upgraded connection into the hub and relay. Blocks
// until the connection closes.
func ServeWs(hub *Hub, relay *Relay, conn *websocket.Conn, identity *entity.Identity) {
	client := &Client{
		Hub:       hub,
		Conn:      conn,
		Identity:  identity,
		Send:      make(chan []byte, 256),
		onMessage: relay.HandleMessage,
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
