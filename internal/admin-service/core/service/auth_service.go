package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"
	"fleet-admin/internal/config"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	ctx       context.Context
	cfg       *config.Config
	adminRepo ports.IAdminRepo
	mylog     applog.Logger
}

func NewAuthService(ctx context.Context, cfg *config.Config, adminRepo ports.IAdminRepo, mylog applog.Logger) *AuthService {
	return &AuthService{
		ctx:       ctx,
		cfg:       cfg,
		adminRepo: adminRepo,
		mylog:     mylog,
	}
}

func (as *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginData, error) {
	mylog := as.mylog.Action("Login")

	if req.Email == "" || req.Password == "" {
		return dto.LoginData{}, errors.New("email and password are required")
	}

	admin, err := as.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUnknownEmail) {
			mylog.Warn("Failed to login, unknown email")
			return dto.LoginData{}, err
		}
		mylog.Error("Failed to load admin from db", err)
		return dto.LoginData{}, fmt.Errorf("cannot load admin from db: %w", err)
	}

	if bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(req.Password)) != nil {
		mylog.Debug("Failed to login, wrong password")
		return dto.LoginData{}, ErrPasswordUnknown
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"role":     admin.Role,
		"exp":      time.Now().Add(time.Duration(as.cfg.App.TokenTTLHours) * time.Hour).Unix(),
	})
	tokenString, err := accessToken.SignedString([]byte(as.cfg.App.JwtSecret))
	if err != nil {
		mylog.Error("error to create jwt token", err)
		return dto.LoginData{}, err
	}

	mylog.Info("Admin logged in", "email", admin.Email)
	return dto.LoginData{Token: tokenString, Role: admin.Role}, nil
}
