package service

import (
	"context"
	"errors"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"
)

type PriceService struct {
	ctx       context.Context
	priceRepo ports.IPriceRepo
	mylog     applog.Logger
}

func NewPriceService(ctx context.Context, priceRepo ports.IPriceRepo, mylog applog.Logger) *PriceService {
	return &PriceService{
		ctx:       ctx,
		priceRepo: priceRepo,
		mylog:     mylog,
	}
}

func (ps *PriceService) Get(ctx context.Context) (models.RidePrices, error) {
	prices, err := ps.priceRepo.Get(ctx)
	if err != nil {
		return models.RidePrices{}, fmt.Errorf("get ride prices: %w", err)
	}
	return prices, nil
}

func (ps *PriceService) Save(ctx context.Context, prices models.RidePrices) error {
	if prices.Bike < 0 || prices.Taxi < 0 || prices.Port < 0 {
		return errors.New("price per km cannot be negative")
	}
	if err := ps.priceRepo.Upsert(ctx, prices); err != nil {
		ps.mylog.Action("SaveRidePrices").Error("Failed to save ride prices", err)
		return fmt.Errorf("save ride prices: %w", err)
	}
	ps.mylog.Action("SaveRidePrices").Info("Ride prices updated",
		"bike", prices.Bike, "taxi", prices.Taxi, "port", prices.Port)
	return nil
}
