package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"
	"fleet-admin/internal/config"
	"fleet-admin/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const hashFactor = 10

type DriverService struct {
	ctx        context.Context
	cfg        *config.Config
	driverRepo ports.IDriverRepo
	broker     ports.IEventBroker
	mylog      applog.Logger
}

func NewDriverService(
	ctx context.Context,
	cfg *config.Config,
	driverRepo ports.IDriverRepo,
	broker ports.IEventBroker,
	mylog applog.Logger,
) *DriverService {
	return &DriverService{
		ctx:        ctx,
		cfg:        cfg,
		driverRepo: driverRepo,
		broker:     broker,
		mylog:      mylog,
	}
}

func (ds *DriverService) List(ctx context.Context) ([]models.Driver, error) {
	drivers, err := ds.driverRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return drivers, nil
}

// Create re-validates the draft server-side, then stores the driver with the
// configured onboarding defaults: a deployment-set password and initial
// status. The request never carries either.
func (ds *DriverService) Create(ctx context.Context, req dto.DriverCreateRequest) (string, validation.Errors, error) {
	mylog := ds.mylog.Action("CreateDriver")

	draft := validation.DriverDraft{
		Name:            req.Name,
		Phone:           validation.FormatPhone(req.Phone),
		Email:           req.Email,
		VehicleNumber:   validation.FormatCode(req.VehicleNumber),
		LicenseNumber:   validation.FormatCode(req.LicenseNumber),
		AadharNumber:    validation.FormatAadhaar(req.AadharNumber),
		PanNumber:       validation.FormatCode(req.PanNumber),
		IfscCode:        validation.FormatCode(req.IfscCode),
		BankAccount:     req.BankAccount,
		MinWalletAmount: req.MinWalletAmount,
	}

	// Documents are uploaded out of band by the dashboard, so the attachment
	// rules are satisfied here and only the field rules apply.
	errs := validation.Validate(draft, validation.Attachments{
		License: []validation.FileMeta{{}},
		Aadhaar: []validation.FileMeta{{}},
		RC:      []validation.FileMeta{{}},
	})
	if !models.AllowedVehicleTypes[req.VehicleType] {
		errs["vehicleType"] = "unknown vehicle type"
	}
	if len(errs) > 0 {
		mylog.Warn("Driver draft rejected", "fields", len(errs))
		return "", errs, ErrInvalidDraft
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(ds.cfg.Driver.DefaultPassword), hashFactor)
	if err != nil {
		return "", nil, fmt.Errorf("hash default password: %w", err)
	}

	driver := models.Driver{
		Name:          strings.TrimSpace(req.Name),
		Phone:         draft.Phone,
		Email:         req.Email,
		VehicleType:   req.VehicleType,
		VehicleNumber: draft.VehicleNumber,
		LicenseNumber: draft.LicenseNumber,
		AadharNumber:  draft.AadharNumber,
		PanNumber:     draft.PanNumber,
		IfscCode:      draft.IfscCode,
		BankAccount:   req.BankAccount,
		Wallet:        req.MinWalletAmount,
		Status:        ds.cfg.Driver.InitialStatus,
	}

	id, err := ds.driverRepo.Create(ctx, driver, passwordHash)
	if err != nil {
		mylog.Error("Failed to save driver in db", err)
		return "", nil, fmt.Errorf("cannot save driver in db: %w", err)
	}

	ds.publish(dto.DriverEvent{
		Type:     dto.EventDriverJoined,
		DriverID: id,
		Name:     driver.Name,
		Status:   driver.Status,
		At:       time.Now().UTC(),
	})

	mylog.Info("Driver created", "driver_id", id)
	return id, nil, nil
}

// ToggleStatus flips Live and Offline for exactly one driver and returns the
// stored status.
func (ds *DriverService) ToggleStatus(ctx context.Context, id string) (string, error) {
	mylog := ds.mylog.Action("ToggleStatus")

	status, err := ds.driverRepo.ToggleStatus(ctx, id)
	if err != nil {
		mylog.Error("Failed to toggle driver status", err, "driver_id", id)
		return "", err
	}

	ds.publish(dto.DriverEvent{
		Type:     dto.EventDriverStatus,
		DriverID: id,
		Status:   status,
		At:       time.Now().UTC(),
	})

	mylog.Info("Driver status toggled", "driver_id", id, "status", status)
	return status, nil
}

// AddToWallet credits the driver's wallet and returns the balance the store
// computed, never the caller's arithmetic.
func (ds *DriverService) AddToWallet(ctx context.Context, id string, amount float64) (dto.WalletData, error) {
	mylog := ds.mylog.Action("AddToWallet")

	if amount <= 0 {
		return dto.WalletData{}, ErrInvalidAmount
	}

	wallet, err := ds.driverRepo.AddToWallet(ctx, id, amount)
	if err != nil {
		mylog.Error("Failed to update driver wallet", err, "driver_id", id)
		return dto.WalletData{}, err
	}

	ds.publish(dto.DriverEvent{
		Type:     dto.EventDriverWallet,
		DriverID: id,
		Wallet:   wallet,
		At:       time.Now().UTC(),
	})

	mylog.Info("Driver wallet credited", "driver_id", id, "wallet", wallet)
	return dto.WalletData{Wallet: wallet, AddedAmount: amount}, nil
}

// publish pushes an event to the broker. A broker failure must not fail the
// mutation: the DB write already happened.
func (ds *DriverService) publish(event dto.DriverEvent) {
	if ds.broker == nil {
		return
	}
	if err := ds.broker.PublishDriverEvent(ds.ctx, event); err != nil {
		ds.mylog.Action("publish_driver_event").Warn("Failed to publish driver event", "type", event.Type)
	}
}
