package ports

import "github.com/gorilla/websocket"

// IDashboardFeed fans driver events out to connected dashboard sockets.
type IDashboardFeed interface {
	Register(conn *websocket.Conn) string
	Unregister(id string)
	Broadcast(message []byte)
	CloseAll()
}
