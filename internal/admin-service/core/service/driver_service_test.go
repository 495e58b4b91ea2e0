package service_test

import (
	"context"
	"errors"
	"testing"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/service"
	"fleet-admin/internal/applog"
	"fleet-admin/internal/config"

	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		App: &config.Appconfig{JwtSecret: "test-secret", TokenTTLHours: 1},
		Driver: &config.DriverPolicyconfig{
			DefaultPassword: "driver@123",
			InitialStatus:   "Live",
		},
	}
}

func testLogger(t *testing.T) applog.Logger {
	t.Helper()
	mylog, err := applog.New("ERROR")
	if err != nil {
		t.Fatal(err)
	}
	return mylog
}

type fakeDriverRepo struct {
	drivers  map[string]models.Driver
	lastHash []byte
	created  models.Driver
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: map[string]models.Driver{}}
}

func (r *fakeDriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	out := make([]models.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDriverRepo) GetByID(ctx context.Context, id string) (models.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return models.Driver{}, service.ErrDriverNotFound
	}
	return d, nil
}

func (r *fakeDriverRepo) Create(ctx context.Context, driver models.Driver, passwordHash []byte) (string, error) {
	r.created = driver
	r.lastHash = passwordHash
	driver.ID = "generated-id"
	r.drivers[driver.ID] = driver
	return driver.ID, nil
}

func (r *fakeDriverRepo) ToggleStatus(ctx context.Context, id string) (string, error) {
	d, ok := r.drivers[id]
	if !ok {
		return "", service.ErrDriverNotFound
	}
	if d.Status == "Live" {
		d.Status = "Offline"
	} else {
		d.Status = "Live"
	}
	r.drivers[id] = d
	return d.Status, nil
}

func (r *fakeDriverRepo) AddToWallet(ctx context.Context, id string, amount float64) (float64, error) {
	d, ok := r.drivers[id]
	if !ok {
		return 0, service.ErrDriverNotFound
	}
	d.Wallet += amount
	r.drivers[id] = d
	return d.Wallet, nil
}

func validCreateRequest() dto.DriverCreateRequest {
	return dto.DriverCreateRequest{
		Name:            "Ravi Kumar",
		Phone:           "9876543210",
		VehicleType:     "taxi",
		VehicleNumber:   "TN01AB1234",
		LicenseNumber:   "TN0120201234567",
		AadharNumber:    "123456789012",
		MinWalletAmount: 1500,
	}
}

func TestDriverService_CreateAppliesPolicy(t *testing.T) {
	repo := newFakeDriverRepo()
	svc := service.NewDriverService(context.Background(), testConfig(), repo, nil, testLogger(t))

	id, fields, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("create: err=%v fields=%v", err, fields)
	}
	if id != "generated-id" {
		t.Fatalf("id = %q", id)
	}

	if repo.created.Status != "Live" {
		t.Errorf("initial status = %q, want configured Live", repo.created.Status)
	}
	if repo.created.Wallet != 1500 {
		t.Errorf("wallet = %v, want the requested opening amount", repo.created.Wallet)
	}
	if err := bcrypt.CompareHashAndPassword(repo.lastHash, []byte("driver@123")); err != nil {
		t.Errorf("stored hash does not match the configured default password")
	}
}

func TestDriverService_CreateNormalizesInput(t *testing.T) {
	repo := newFakeDriverRepo()
	svc := service.NewDriverService(context.Background(), testConfig(), repo, nil, testLogger(t))

	req := validCreateRequest()
	req.Phone = "98765 43210"
	req.VehicleNumber = "tn 01 ab 1234"
	req.AadharNumber = "1234 5678 9012"

	if _, fields, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("create: err=%v fields=%v", err, fields)
	}
	if repo.created.Phone != "9876543210" {
		t.Errorf("phone = %q", repo.created.Phone)
	}
	if repo.created.VehicleNumber != "TN01AB1234" {
		t.Errorf("vehicle number = %q", repo.created.VehicleNumber)
	}
	if repo.created.AadharNumber != "123456789012" {
		t.Errorf("aadhaar = %q", repo.created.AadharNumber)
	}
}

func TestDriverService_CreateRejectsBadDraft(t *testing.T) {
	repo := newFakeDriverRepo()
	svc := service.NewDriverService(context.Background(), testConfig(), repo, nil, testLogger(t))

	req := validCreateRequest()
	req.Phone = "12345"
	req.VehicleType = "truck"

	_, fields, err := svc.Create(context.Background(), req)
	if !errors.Is(err, service.ErrInvalidDraft) {
		t.Fatalf("err = %v, want ErrInvalidDraft", err)
	}
	if fields["phone"] == "" || fields["vehicleType"] == "" {
		t.Fatalf("fields = %v", fields)
	}
	if len(repo.drivers) != 0 {
		t.Fatalf("rejected draft reached the repo")
	}
}

func TestDriverService_ToggleStatus(t *testing.T) {
	repo := newFakeDriverRepo()
	repo.drivers["d1"] = models.Driver{ID: "d1", Status: "Live"}
	svc := service.NewDriverService(context.Background(), testConfig(), repo, nil, testLogger(t))

	status, err := svc.ToggleStatus(context.Background(), "d1")
	if err != nil {
		t.Fatal(err)
	}
	if status != "Offline" {
		t.Fatalf("status = %q, want Offline", status)
	}

	status, err = svc.ToggleStatus(context.Background(), "d1")
	if err != nil {
		t.Fatal(err)
	}
	if status != "Live" {
		t.Fatalf("status = %q, want Live", status)
	}

	if _, err := svc.ToggleStatus(context.Background(), "missing"); !errors.Is(err, service.ErrDriverNotFound) {
		t.Fatalf("err = %v, want ErrDriverNotFound", err)
	}
}

func TestDriverService_AddToWallet(t *testing.T) {
	repo := newFakeDriverRepo()
	repo.drivers["d1"] = models.Driver{ID: "d1", Wallet: 500}
	svc := service.NewDriverService(context.Background(), testConfig(), repo, nil, testLogger(t))

	data, err := svc.AddToWallet(context.Background(), "d1", 200)
	if err != nil {
		t.Fatal(err)
	}
	if data.Wallet != 700 || data.AddedAmount != 200 {
		t.Fatalf("wallet data %+v", data)
	}

	for _, amount := range []float64{0, -10} {
		if _, err := svc.AddToWallet(context.Background(), "d1", amount); !errors.Is(err, service.ErrInvalidAmount) {
			t.Fatalf("amount %v: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}
