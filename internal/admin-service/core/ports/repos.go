package ports

import (
	"context"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
)

type IDriverRepo interface {
	List(ctx context.Context) ([]models.Driver, error)
	GetByID(ctx context.Context, id string) (models.Driver, error)
	Create(ctx context.Context, driver models.Driver, passwordHash []byte) (string, error)
	ToggleStatus(ctx context.Context, id string) (string, error)
	AddToWallet(ctx context.Context, id string, amount float64) (float64, error)
}

type IUserRepo interface {
	List(ctx context.Context, limit, offset int) ([]models.User, int, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, id string, upd dto.UserUpdateRequest) (models.User, error)
	Delete(ctx context.Context, id string) error
}

type IPriceRepo interface {
	Get(ctx context.Context) (models.RidePrices, error)
	Upsert(ctx context.Context, prices models.RidePrices) error
}

type IAdminRepo interface {
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
}

type IOverviewRepo interface {
	GetOverview(ctx context.Context) (dto.Overview, error)
	GetSalesRows(ctx context.Context) ([]models.Driver, error)
}
