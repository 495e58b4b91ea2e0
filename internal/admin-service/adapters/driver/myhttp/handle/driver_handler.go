package handle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/service"
	"fleet-admin/internal/applog"
)

type DriverHandler struct {
	driverService *service.DriverService
	mylog         applog.Logger
}

func NewDriverHandler(driverService *service.DriverService, mylog applog.Logger) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		mylog:         mylog,
	}
}

func (dh *DriverHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		drivers, err := dh.driverService.List(ctx)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, fmt.Errorf("failed to list drivers: %v", err))
			return
		}

		jsonResponse(w, http.StatusOK, drivers)
	}
}

func (dh *DriverHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var createReq dto.DriverCreateRequest

		mylog := dh.mylog.Action("CreateDriver")

		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			mylog.Error("Failed to parse driver create request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		id, fieldErrs, err := dh.driverService.Create(ctx, createReq)
		if err != nil {
			if errors.Is(err, service.ErrInvalidDraft) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error":   err.Error(),
					"fields":  fieldErrs,
				})
				return
			}
			if errors.Is(err, service.ErrPhoneRegistered) {
				jsonError(w, http.StatusConflict, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonMessage(w, http.StatusCreated, fmt.Sprintf("driver %s created", id))
	}
}

func (dh *DriverHandler) ToggleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		status, err := dh.driverService.ToggleStatus(ctx, id)
		if err != nil {
			if errors.Is(err, service.ErrDriverNotFound) {
				jsonError(w, http.StatusNotFound, err)
				return
			}
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.StatusData{Status: status})
	}
}

func (dh *DriverHandler) AddToWallet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var walletReq dto.WalletRequest
		if err := json.NewDecoder(r.Body).Decode(&walletReq); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		data, err := dh.driverService.AddToWallet(ctx, id, walletReq.Amount)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidAmount):
				jsonError(w, http.StatusBadRequest, err)
			case errors.Is(err, service.ErrDriverNotFound):
				jsonError(w, http.StatusNotFound, err)
			default:
				jsonError(w, http.StatusInternalServerError, err)
			}
			return
		}

		jsonResponse(w, http.StatusOK, data)
	}
}
