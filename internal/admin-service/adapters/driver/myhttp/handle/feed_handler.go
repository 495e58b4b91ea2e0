package handle

import (
	"net/http"

	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"

	"github.com/gorilla/websocket"
)

type FeedHandler struct {
	feed     ports.IDashboardFeed
	upgrader websocket.Upgrader
	mylog    applog.Logger
}

func NewFeedHandler(feed ports.IDashboardFeed, mylog applog.Logger) *FeedHandler {
	return &FeedHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		mylog: mylog,
	}
}

// LiveFeed upgrades the connection and keeps it subscribed to driver events
// until the dashboard goes away. The read loop exists only to notice the
// close; the feed is write-only towards the client.
func (fh *FeedHandler) LiveFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := fh.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		id := fh.feed.Register(conn)
		defer fh.feed.Unregister(id)

		fh.mylog.Action("dashboard_connected").Info("Dashboard subscribed to live feed", "subscriber_id", id)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
