package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/dashboard/store"
)

// LiveClient subscribes to the admin live feed and patches the driver store
// in place as events arrive.
type LiveClient struct {
	conn   *websocket.Conn
	store  *store.DriverStore
	logger *Logger
}

func NewLiveClient(s *store.DriverStore, logger *Logger) *LiveClient {
	return &LiveClient{store: s, logger: logger}
}

func (l *LiveClient) Connect(url, token string) error {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		return fmt.Errorf("connecting to live feed: %w", err)
	}
	l.conn = conn
	l.logger.Live("connected to %s", url)
	return nil
}

func (l *LiveClient) Close() error {
	if l.conn != nil {
		return l.conn.Close()
	}
	return nil
}

// Run reads events until the context is cancelled or the connection drops.
// Unknown event types are logged and skipped.
func (l *LiveClient) Run(ctx context.Context, onChange func(dto.DriverEvent)) error {
	for {
		select {
		case <-ctx.Done():
			l.logger.Live("read loop stopped: context cancelled")
			return nil
		default:
			_, payload, err := l.conn.ReadMessage()
			if err != nil {
				return fmt.Errorf("reading live feed: %w", err)
			}

			var ev dto.DriverEvent
			if err := json.Unmarshal(payload, &ev); err != nil {
				l.logger.Warn("skipping malformed event: %v", err)
				continue
			}

			switch ev.Type {
			case dto.EventDriverStatus:
				l.store.ApplyStatus(ev.DriverID, ev.Status)
			case dto.EventDriverWallet:
				l.store.ApplyWallet(ev.DriverID, ev.Wallet)
			case dto.EventDriverJoined:
				// New drivers need a full refetch; leave that to the caller.
			default:
				l.logger.Warn("unknown event type %q", ev.Type)
				continue
			}

			if onChange != nil {
				onChange(ev)
			}
		}
	}
}
