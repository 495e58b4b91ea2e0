package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"fleet-admin/internal/dashboard/api"
	"fleet-admin/internal/dashboard/session"
	"fleet-admin/internal/validation"
)

func newClient(t *testing.T, handler http.Handler) (*api.Client, *session.Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess, err := session.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return api.New(srv.URL, sess), sess, srv
}

func ok(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func validDraft() validation.DriverDraft {
	return validation.DriverDraft{
		Name:            "Ravi Kumar",
		Phone:           "9876543210",
		VehicleNumber:   "TN01AB1234",
		LicenseNumber:   "TN0120201234567",
		AadharNumber:    "123456789012",
		MinWalletAmount: 1000,
	}
}

func validFiles() validation.Attachments {
	doc := []validation.FileMeta{{Name: "doc.pdf", MediaType: "application/pdf", Size: 1024}}
	return validation.Attachments{License: doc, Aadhaar: doc, RC: doc}
}

func TestLogin_PersistsToken(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/admin/login" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		ok(w, map[string]string{"token": "jwt-abc", "role": "admin"})
	}))

	data, err := client.Login(context.Background(), "admin@fleet.local", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if data.Token != "jwt-abc" || data.Role != "admin" {
		t.Fatalf("login data %+v", data)
	}
	if sess.Token() != "jwt-abc" {
		t.Fatalf("token not persisted, got %q", sess.Token())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"success":false,"error":"invalid credentials"}`)
	}))

	_, err := client.Login(context.Background(), "admin@fleet.local", "wrong")
	if !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if sess.Token() != "" {
		t.Fatalf("token stored on failed login")
	}
}

func TestRequests_RequireSession(t *testing.T) {
	var hits atomic.Int32
	client, _, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	if _, err := client.FetchDrivers(context.Background()); !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if hits.Load() != 0 {
		t.Fatalf("request sent without a session")
	}
}

func TestExpiredSession_IsCleared(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"success":false,"error":"token expired"}`)
	}))
	if err := sess.Save("stale"); err != nil {
		t.Fatal(err)
	}

	_, err := client.FetchDrivers(context.Background())
	if !errors.Is(err, api.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if sess.Token() != "" {
		t.Fatalf("stale token kept after 401")
	}
}

func TestCreateDriver_InvalidDraftSendsNothing(t *testing.T) {
	var hits atomic.Int32
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		ok(w, nil)
	}))
	sess.Save("tok")

	draft := validDraft()
	draft.Phone = "12345"
	draft.AadharNumber = "9"
	files := validFiles()
	files.Aadhaar = nil

	err := client.CreateDriver(context.Background(), draft, "taxi", files)
	var verr *api.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	for _, field := range []string{"phone", "aadharNumber", "aadhaarFiles"} {
		if verr.Fields[field] == "" {
			t.Fatalf("field %s missing: %v", field, verr.Fields)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("invalid draft reached the network")
	}
}

func TestCreateDriver_SendsDraft(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/drivers/create-simple" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth header = %q", got)
		}
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if body["phone"] != "9876543210" || body["vehicleType"] != "taxi" {
			t.Errorf("payload = %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"success":true,"message":"driver created"}`)
	}))
	sess.Save("tok")

	if err := client.CreateDriver(context.Background(), validDraft(), "taxi", validFiles()); err != nil {
		t.Fatal(err)
	}
}

func TestToggleStatus_ReturnsServerStatus(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/admin/driver/d1/toggle" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		ok(w, map[string]string{"status": "Offline"})
	}))
	sess.Save("tok")

	status, err := client.ToggleStatus(context.Background(), "d1")
	if err != nil {
		t.Fatal(err)
	}
	if status != "Offline" {
		t.Fatalf("status = %q", status)
	}
}

func TestAddToWallet_RejectsNonPositiveLocally(t *testing.T) {
	var hits atomic.Int32
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	sess.Save("tok")

	for _, amount := range []float64{0, -50} {
		_, err := client.AddToWallet(context.Background(), "d1", amount)
		var verr *api.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("amount %v: err = %v, want ValidationError", amount, err)
		}
	}
	if hits.Load() != 0 {
		t.Fatalf("invalid amount reached the network")
	}
}

func TestAddToWallet_ReturnsServerBalance(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]float64{"wallet": 720, "addedAmount": 200})
	}))
	sess.Save("tok")

	data, err := client.AddToWallet(context.Background(), "d1", 200)
	if err != nil {
		t.Fatal(err)
	}
	if data.Wallet != 720 || data.AddedAmount != 200 {
		t.Fatalf("wallet data %+v", data)
	}
}

func TestFetchUsers_DecodesTotal(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"total":42,"data":[{"id":"u1","name":"Meena"}]}`)
	}))
	sess.Save("tok")

	users, total, err := client.FetchUsers(context.Background(), 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	if total != 42 || len(users) != 1 || users[0].Name != "Meena" {
		t.Fatalf("users=%+v total=%d", users, total)
	}
}

func TestMutations_SingleInFlight(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var requests atomic.Int32
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			close(entered)
			<-release
		}
		ok(w, map[string]string{"status": "Live"})
	}))
	sess.Save("tok")

	done := make(chan error, 1)
	go func() {
		_, err := client.ToggleStatus(context.Background(), "d1")
		done <- err
	}()

	<-entered
	if _, err := client.ToggleStatus(context.Background(), "d2"); !errors.Is(err, api.ErrBusy) {
		t.Fatalf("second mutation err = %v, want ErrBusy", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first mutation failed: %v", err)
	}

	// The slot frees once the first call finishes.
	if _, err := client.ToggleStatus(context.Background(), "d1"); err != nil {
		t.Fatalf("follow-up mutation failed: %v", err)
	}
}

func TestServerError_SurfacesAsAPIError(t *testing.T) {
	client, sess, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"success":false,"error":"driver not found"}`)
	}))
	sess.Save("tok")

	_, err := client.ToggleStatus(context.Background(), "missing")
	var aerr *api.APIError
	if !errors.As(err, &aerr) {
		t.Fatalf("err = %v, want APIError", err)
	}
	if aerr.Status != http.StatusNotFound || aerr.Message != "driver not found" {
		t.Fatalf("apierr = %+v", aerr)
	}
}
