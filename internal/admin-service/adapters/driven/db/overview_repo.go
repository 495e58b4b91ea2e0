package db

import (
	"context"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"
)

type OverviewRepo struct {
	db ports.IDB
}

func NewOverviewRepo(db ports.IDB) *OverviewRepo {
	return &OverviewRepo{db: db}
}

func (or *OverviewRepo) GetOverview(ctx context.Context) (dto.Overview, error) {
	var overview dto.Overview

	q1 := `
	SELECT
		COUNT(*) as total_drivers,
		COUNT(*) FILTER (WHERE status = 'Live') as live_drivers,
		COUNT(*) FILTER (WHERE status = 'Offline') as offline_drivers,
		COALESCE(SUM(wallet), 0)::float as wallet_total,
		COALESCE(SUM(total_rides), 0) as total_rides
	FROM drivers;`

	err := or.db.GetConn().QueryRow(ctx, q1).Scan(
		&overview.TotalDrivers,
		&overview.LiveDrivers,
		&overview.OfflineDrivers,
		&overview.WalletTotal,
		&overview.TotalRides,
	)
	if err != nil {
		return dto.Overview{}, fmt.Errorf("failed to get driver metrics: %v", err)
	}

	if err := or.db.GetConn().QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&overview.TotalUsers); err != nil {
		return dto.Overview{}, fmt.Errorf("failed to get user metrics: %v", err)
	}

	q2 := `SELECT vehicle_type, COUNT(*) FROM drivers GROUP BY vehicle_type;`
	rows, err := or.db.GetConn().Query(ctx, q2)
	if err != nil {
		return dto.Overview{}, fmt.Errorf("failed to query vehicle distribution: %w", err)
	}
	defer rows.Close()

	overview.DriversByType = make(map[string]int)
	for rows.Next() {
		var vehicleType string
		var count int
		if err := rows.Scan(&vehicleType, &count); err != nil {
			return dto.Overview{}, fmt.Errorf("failed to scan vehicle distribution: %w", err)
		}
		overview.DriversByType[vehicleType] = count
	}

	return overview, rows.Err()
}

func (or *OverviewRepo) GetSalesRows(ctx context.Context) ([]models.Driver, error) {
	return NewDriverRepo(or.db).List(ctx)
}
