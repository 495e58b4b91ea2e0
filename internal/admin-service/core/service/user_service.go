package service

import (
	"context"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"
)

const (
	DefaultUserPageSize = 10
	MaxUserPageSize     = 100
)

type UserService struct {
	ctx      context.Context
	userRepo ports.IUserRepo
	mylog    applog.Logger
}

func NewUserService(ctx context.Context, userRepo ports.IUserRepo, mylog applog.Logger) *UserService {
	return &UserService{
		ctx:      ctx,
		userRepo: userRepo,
		mylog:    mylog,
	}
}

// ListRegistered pages server-side. Page numbers are 1-based; out-of-range
// values fall back to sane defaults rather than erroring.
func (us *UserService) ListRegistered(ctx context.Context, page, limit int) (dto.UsersPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultUserPageSize
	}
	if limit > MaxUserPageSize {
		limit = MaxUserPageSize
	}

	users, total, err := us.userRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return dto.UsersPage{}, fmt.Errorf("list users: %w", err)
	}
	return dto.UsersPage{Users: users, Total: total}, nil
}

func (us *UserService) Get(ctx context.Context, id string) (models.User, error) {
	return us.userRepo.GetByID(ctx, id)
}

func (us *UserService) Update(ctx context.Context, id string, req dto.UserUpdateRequest) (models.User, error) {
	user, err := us.userRepo.Update(ctx, id, req)
	if err != nil {
		us.mylog.Action("UpdateUser").Error("Failed to update user", err, "user_id", id)
		return models.User{}, err
	}
	us.mylog.Action("UpdateUser").Info("User updated", "user_id", id)
	return user, nil
}

func (us *UserService) Delete(ctx context.Context, id string) error {
	if err := us.userRepo.Delete(ctx, id); err != nil {
		us.mylog.Action("DeleteUser").Error("Failed to delete user", err, "user_id", id)
		return err
	}
	us.mylog.Action("DeleteUser").Info("User deleted", "user_id", id)
	return nil
}
