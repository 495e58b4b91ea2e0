package handle

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/admin-service/core/service"
	"fleet-admin/internal/applog"
)

type OverviewHandler struct {
	overviewService *service.OverviewService
	overviewRepo    ports.IOverviewRepo
	mylog           applog.Logger
}

func NewOverviewHandler(overviewService *service.OverviewService, overviewRepo ports.IOverviewRepo, mylog applog.Logger) *OverviewHandler {
	return &OverviewHandler{
		overviewService: overviewService,
		overviewRepo:    overviewRepo,
		mylog:           mylog,
	}
}

func (oh *OverviewHandler) GetOverview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		overview, err := oh.overviewService.GetOverview(ctx)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, fmt.Errorf("failed to get overview: %v", err))
			return
		}

		jsonResponse(w, http.StatusOK, overview)
	}
}

func (oh *OverviewHandler) ExportSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		// Build the whole workbook first: once the 200 headers go out a
		// mid-build failure could only truncate the download.
		var buf bytes.Buffer
		if err := service.WriteSalesReport(ctx, oh.overviewRepo, &buf); err != nil {
			oh.mylog.Action("ExportSales").Error("Failed to build sales report", err)
			jsonError(w, http.StatusInternalServerError, errors.New("failed to build sales report"))
			return
		}

		filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(buf.Bytes()); err != nil {
			oh.mylog.Action("ExportSales").Error("Failed to send sales report", err)
		}
	}
}
