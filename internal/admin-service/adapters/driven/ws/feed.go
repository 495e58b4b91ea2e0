package ws

import (
	"context"
	"sync"

	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// FeedManager keeps the set of connected dashboard sockets and broadcasts
// driver events to all of them. A socket that fails a write is dropped.
type FeedManager struct {
	subscribers map[string]*websocket.Conn
	mylog       applog.Logger
	mu          sync.RWMutex
}

func NewFeedManager(mylog applog.Logger) *FeedManager {
	return &FeedManager{
		subscribers: make(map[string]*websocket.Conn),
		mylog:       mylog,
	}
}

func (m *FeedManager) Register(conn *websocket.Conn) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.subscribers[id] = conn
	return id
}

func (m *FeedManager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if conn, exists := m.subscribers[id]; exists {
		conn.Close()
		delete(m.subscribers, id)
	}
}

func (m *FeedManager) Broadcast(message []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, conn := range m.subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			conn.Close()
			delete(m.subscribers, id)
		}
	}
}

func (m *FeedManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, conn := range m.subscribers {
		conn.Close()
		delete(m.subscribers, id)
	}
}

// Pump consumes driver events from the broker and fans them out to the
// dashboard sockets until the context is canceled.
func Pump(ctx context.Context, broker ports.IEventBroker, feed ports.IDashboardFeed, mylog applog.Logger) {
	deliveries, err := broker.ConsumeDriverEvents(ctx, "dashboard-feed")
	if err != nil {
		mylog.Action("feed_consume_failed").Error("Failed to consume driver events", err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			feed.Broadcast(d.Body)
			_ = d.Ack(false)
		}
	}
}
