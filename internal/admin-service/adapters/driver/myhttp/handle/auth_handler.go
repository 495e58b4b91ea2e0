package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/service"
	"fleet-admin/internal/applog"
)

type AuthHandler struct {
	authService *service.AuthService
	mylog       applog.Logger
}

func NewAuthHandler(authService *service.AuthService, mylog applog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mylog:       mylog,
	}
}

func (ah *AuthHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var loginReq dto.LoginRequest

		mylog := ah.mylog.Action("Login")

		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			mylog.Error("Failed to parse login request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		data, err := ah.authService.Login(ctx, loginReq)
		if err != nil {
			if errors.Is(err, service.ErrUnknownEmail) || errors.Is(err, service.ErrPasswordUnknown) {
				jsonError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, data)
		mylog.Info("Admin login succeeded")
	}
}
