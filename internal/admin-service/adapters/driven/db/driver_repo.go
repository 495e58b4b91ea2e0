package db

import (
	"context"
	"errors"
	"fmt"

	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/admin-service/core/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DriverRepo struct {
	db ports.IDB
}

func NewDriverRepo(db ports.IDB) *DriverRepo {
	return &DriverRepo{db: db}
}

const driverColumns = `driver_id, name, phone, COALESCE(email, ''), vehicle_type, vehicle_number,
	license_number, aadhar_number, COALESCE(pan_number, ''), COALESCE(ifsc_code, ''),
	COALESCE(bank_account, ''), wallet, status, COALESCE(rating, 0), total_rides, created_at`

func (dr *DriverRepo) List(ctx context.Context) ([]models.Driver, error) {
	q := fmt.Sprintf(`SELECT %s FROM drivers ORDER BY created_at DESC`, driverColumns)

	rows, err := dr.db.GetConn().Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		driver, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, driver)
	}
	return drivers, rows.Err()
}

func (dr *DriverRepo) GetByID(ctx context.Context, id string) (models.Driver, error) {
	q := fmt.Sprintf(`SELECT %s FROM drivers WHERE driver_id = $1`, driverColumns)

	row := dr.db.GetConn().QueryRow(ctx, q, id)
	driver, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Driver{}, service.ErrDriverNotFound
		}
		return models.Driver{}, fmt.Errorf("failed to get driver: %w", err)
	}
	return driver, nil
}

func (dr *DriverRepo) Create(ctx context.Context, driver models.Driver, passwordHash []byte) (string, error) {
	q := `
	INSERT INTO drivers
		(driver_id, name, phone, email, vehicle_type, vehicle_number, license_number,
		 aadhar_number, pan_number, ifsc_code, bank_account, wallet, status, password_hash)
	VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14)
	RETURNING driver_id`

	id := uuid.NewString()
	err := dr.db.GetConn().QueryRow(ctx, q,
		id, driver.Name, driver.Phone, driver.Email, driver.VehicleType,
		driver.VehicleNumber, driver.LicenseNumber, driver.AadharNumber,
		driver.PanNumber, driver.IfscCode, driver.BankAccount,
		driver.Wallet, driver.Status, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", service.ErrPhoneRegistered
		}
		return "", fmt.Errorf("failed to insert driver: %w", err)
	}
	return id, nil
}

// ToggleStatus flips Live and Offline in one statement so concurrent toggles
// cannot lose an update.
func (dr *DriverRepo) ToggleStatus(ctx context.Context, id string) (string, error) {
	q := `
	UPDATE drivers
	SET status = CASE WHEN status = 'Live' THEN 'Offline' ELSE 'Live' END
	WHERE driver_id = $1
	RETURNING status`

	var status string
	if err := dr.db.GetConn().QueryRow(ctx, q, id).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", service.ErrDriverNotFound
		}
		return "", fmt.Errorf("failed to toggle driver status: %w", err)
	}
	return status, nil
}

// AddToWallet credits the wallet and returns the stored balance.
func (dr *DriverRepo) AddToWallet(ctx context.Context, id string, amount float64) (float64, error) {
	q := `
	UPDATE drivers
	SET wallet = wallet + $2
	WHERE driver_id = $1
	RETURNING wallet`

	var wallet float64
	if err := dr.db.GetConn().QueryRow(ctx, q, id, amount).Scan(&wallet); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, service.ErrDriverNotFound
		}
		return 0, fmt.Errorf("failed to update driver wallet: %w", err)
	}
	return wallet, nil
}

func scanDriver(row pgx.Row) (models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.ID, &d.Name, &d.Phone, &d.Email, &d.VehicleType, &d.VehicleNumber,
		&d.LicenseNumber, &d.AadharNumber, &d.PanNumber, &d.IfscCode,
		&d.BankAccount, &d.Wallet, &d.Status, &d.Rating, &d.TotalRides, &d.CreatedAt,
	)
	return d, err
}
