package db

import (
	"context"
	"errors"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/admin-service/core/service"

	"github.com/jackc/pgx/v5"
)

type UserRepo struct {
	db ports.IDB
}

func NewUserRepo(db ports.IDB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `user_id, name, phone, COALESCE(email, ''), COALESCE(address, ''),
	COALESCE(gender, ''), COALESCE(date_of_birth, ''), wallet, customer_id, created_at`

func (ur *UserRepo) List(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	var total int
	if err := ur.db.GetConn().QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	q := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, userColumns)
	rows, err := ur.db.GetConn().Query(ctx, q, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

func (ur *UserRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	q := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1`, userColumns)

	user, err := scanUser(ur.db.GetConn().QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, service.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (ur *UserRepo) Update(ctx context.Context, id string, upd dto.UserUpdateRequest) (models.User, error) {
	q := fmt.Sprintf(`
	UPDATE users
	SET name = $2, phone = $3, email = NULLIF($4, ''), address = NULLIF($5, ''),
	    gender = NULLIF($6, ''), date_of_birth = NULLIF($7, '')
	WHERE user_id = $1
	RETURNING %s`, userColumns)

	user, err := scanUser(ur.db.GetConn().QueryRow(ctx, q,
		id, upd.Name, upd.Phone, upd.Email, upd.Address, upd.Gender, upd.DateOfBirth))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, service.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (ur *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := ur.db.GetConn().Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Phone, &u.Email, &u.Address,
		&u.Gender, &u.DateOfBirth, &u.Wallet, &u.CustomerID, &u.CreatedAt,
	)
	return u, err
}
