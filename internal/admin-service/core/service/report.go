package service

import (
	"context"
	"fmt"
	"io"

	"fleet-admin/internal/admin-service/core/ports"

	"github.com/xuri/excelize/v2"
)

// WriteSalesReport builds the drivers sales sheet the dashboard exports and
// streams it as an xlsx workbook.
func WriteSalesReport(ctx context.Context, overviewRepo ports.IOverviewRepo, w io.Writer) error {
	drivers, err := overviewRepo.GetSalesRows(ctx)
	if err != nil {
		return fmt.Errorf("load sales rows: %w", err)
	}

	f := excelize.NewFile()
	const sheetName = "Drivers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"ID", "Name", "Phone", "Vehicle Type", "Vehicle Number", "Status", "Wallet", "Total Rides", "Rating"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for row, d := range drivers {
		values := []interface{}{d.ID, d.Name, d.Phone, d.VehicleType, d.VehicleNumber, d.Status, d.Wallet, d.TotalRides, d.Rating}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
