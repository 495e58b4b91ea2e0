package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/service"
	"fleet-admin/internal/applog"
)

type UserHandler struct {
	userService *service.UserService
	mylog       applog.Logger
}

func NewUserHandler(userService *service.UserService, mylog applog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		mylog:       mylog,
	}
}

// ListRegistered responds with {success, data, total}: the page of users plus
// the unpaged count the dashboard uses for its pager.
func (uh *UserHandler) ListRegistered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		usersPage, err := uh.userService.ListRegistered(ctx, page, limit)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    usersPage.Users,
			"total":   usersPage.Total,
		})
	}
}

func (uh *UserHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		user, err := uh.userService.Get(ctx, r.PathValue("id"))
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, user)
	}
}

func (uh *UserHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var updateReq dto.UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		user, err := uh.userService.Update(ctx, r.PathValue("id"), updateReq)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, user)
	}
}

func (uh *UserHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		if err := uh.userService.Delete(ctx, r.PathValue("id")); err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonMessage(w, http.StatusOK, "user deleted")
	}
}
