package service

import (
	"context"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"
)

type OverviewService struct {
	ctx          context.Context
	overviewRepo ports.IOverviewRepo
	mylog        applog.Logger
}

func NewOverviewService(ctx context.Context, overviewRepo ports.IOverviewRepo, mylog applog.Logger) *OverviewService {
	return &OverviewService{
		ctx:          ctx,
		overviewRepo: overviewRepo,
		mylog:        mylog,
	}
}

func (os *OverviewService) GetOverview(ctx context.Context) (dto.Overview, error) {
	overview, err := os.overviewRepo.GetOverview(ctx)
	if err != nil {
		return dto.Overview{}, fmt.Errorf("failed to get overview: %w", err)
	}
	return overview, nil
}
