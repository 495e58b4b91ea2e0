package db

import (
	"context"
	"errors"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/admin-service/core/service"

	"github.com/jackc/pgx/v5"
)

type AdminRepo struct {
	db ports.IDB
}

func NewAdminRepo(db ports.IDB) *AdminRepo {
	return &AdminRepo{db: db}
}

func (ar *AdminRepo) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	q := `SELECT admin_id, email, password_hash, role FROM admins WHERE email = $1`

	err := ar.db.GetConn().QueryRow(ctx, q, email).Scan(
		&admin.ID, &admin.Email, &admin.PasswordHash, &admin.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, service.ErrUnknownEmail
		}
		return models.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}
