package handle_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-admin/internal/admin-service/adapters/driven/ws"
	"fleet-admin/internal/admin-service/adapters/driver/myhttp/handle"
	"fleet-admin/internal/admin-service/adapters/driver/myhttp/middleware"
	"fleet-admin/internal/applog"
)

func testLogger(t *testing.T) applog.Logger {
	t.Helper()
	mylog, err := applog.New("ERROR")
	if err != nil {
		t.Fatal(err)
	}
	return mylog
}

// The live feed carries driver status and wallet events, so it sits behind
// the same bearer check as the REST surface: no token, no upgrade.
func TestLiveFeed_RequiresBearerToken(t *testing.T) {
	mylog := testLogger(t)
	feed := ws.NewFeedManager(mylog)
	handler := middleware.NewAuthMiddleware("test-secret").Wrap(
		handle.NewFeedHandler(feed, mylog).LiveFeed())

	req := httptest.NewRequest(http.MethodGet, "/ws/admin/live", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q, want the json error envelope", got)
	}
}
