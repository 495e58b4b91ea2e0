package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/service"
	"fleet-admin/internal/applog"
)

type PriceHandler struct {
	priceService *service.PriceService
	mylog        applog.Logger
}

func NewPriceHandler(priceService *service.PriceService, mylog applog.Logger) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
		mylog:        mylog,
	}
}

func (ph *PriceHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		prices, err := ph.priceService.Get(ctx)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResponse(w, http.StatusOK, prices)
	}
}

func (ph *PriceHandler) Save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var prices models.RidePrices
		if err := json.NewDecoder(r.Body).Decode(&prices); err != nil {
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), WaitTime*time.Second)
		defer cancel()

		if err := ph.priceService.Save(ctx, prices); err != nil {
			jsonError(w, http.StatusBadRequest, err)
			return
		}

		jsonMessage(w, http.StatusOK, "ride prices updated")
	}
}
