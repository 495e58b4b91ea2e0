package handle_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet-admin/internal/admin-service/adapters/driver/myhttp/handle"
	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/service"
)

type fakeOverviewRepo struct {
	rows    []models.Driver
	rowsErr error
}

func (r *fakeOverviewRepo) GetOverview(ctx context.Context) (dto.Overview, error) {
	return dto.Overview{}, nil
}

func (r *fakeOverviewRepo) GetSalesRows(ctx context.Context) ([]models.Driver, error) {
	return r.rows, r.rowsErr
}

func exportSales(t *testing.T, repo *fakeOverviewRepo) *httptest.ResponseRecorder {
	t.Helper()
	mylog := testLogger(t)
	svc := service.NewOverviewService(context.Background(), repo, mylog)
	handler := handle.NewOverviewHandler(svc, repo, mylog).ExportSales()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/sales/export", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestExportSales_WritesWorkbook(t *testing.T) {
	rec := exportSales(t, &fakeOverviewRepo{rows: []models.Driver{
		{ID: "d1", Name: "Ravi", VehicleType: "taxi", Status: "Live", Wallet: 1500},
	}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "spreadsheetml") {
		t.Errorf("content type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "sales-") {
		t.Errorf("content disposition = %q", got)
	}
	// xlsx files are zip containers.
	if body := rec.Body.Bytes(); len(body) < 2 || body[0] != 'P' || body[1] != 'K' {
		t.Errorf("body is not a workbook (%d bytes)", len(body))
	}
}

// A repo failure must produce a json error, never a 200 with a truncated file.
func TestExportSales_RepoFailure(t *testing.T) {
	rec := exportSales(t, &fakeOverviewRepo{rowsErr: errors.New("connection reset")})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var reply struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("body is not the json error envelope: %s", rec.Body.String())
	}
	if reply.Success || reply.Error == "" {
		t.Fatalf("reply = %+v", reply)
	}
}
