package db

import (
	"context"
	"errors"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"

	"github.com/jackc/pgx/v5"
)

// Ride prices live in a single-row table keyed by a fixed id, so reads and
// writes stay trivial.
type PriceRepo struct {
	db ports.IDB
}

func NewPriceRepo(db ports.IDB) *PriceRepo {
	return &PriceRepo{db: db}
}

func (pr *PriceRepo) Get(ctx context.Context) (models.RidePrices, error) {
	var p models.RidePrices
	q := `SELECT bike, taxi, port FROM ride_prices WHERE config_id = 1`

	err := pr.db.GetConn().QueryRow(ctx, q).Scan(&p.Bike, &p.Taxi, &p.Port)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RidePrices{}, nil
		}
		return models.RidePrices{}, fmt.Errorf("failed to get ride prices: %w", err)
	}
	return p, nil
}

func (pr *PriceRepo) Upsert(ctx context.Context, prices models.RidePrices) error {
	q := `
	INSERT INTO ride_prices (config_id, bike, taxi, port)
	VALUES (1, $1, $2, $3)
	ON CONFLICT (config_id) DO UPDATE
	SET bike = EXCLUDED.bike, taxi = EXCLUDED.taxi, port = EXCLUDED.port, updated_at = NOW()`

	if _, err := pr.db.GetConn().Exec(ctx, q, prices.Bike, prices.Taxi, prices.Port); err != nil {
		return fmt.Errorf("failed to upsert ride prices: %w", err)
	}
	return nil
}
