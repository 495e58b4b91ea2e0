// Package api is the dashboard's mutation dispatcher: a thin REST client for
// the admin backend. No local state is touched here; callers reconcile the
// record store only after a call returns successfully.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"fleet-admin/internal/admin-service/core/domain/dto"
	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/dashboard/session"
	"fleet-admin/internal/validation"
)

type Client struct {
	base    string
	client  *http.Client
	session *session.Store
	busy    atomic.Bool
}

func New(base string, sess *session.Store) *Client {
	return &Client{
		base: base,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		session: sess,
	}
}

// envelope is the {success, data, ...} wrapper every backend reply uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Total   int             `json:"total"`
}

// Login exchanges credentials for a bearer token and persists it.
func (c *Client) Login(ctx context.Context, email, password string) (dto.LoginData, error) {
	var data dto.LoginData
	body := dto.LoginRequest{Email: email, Password: password}
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/login", body, &data, false); err != nil {
		return dto.LoginData{}, err
	}
	if err := c.session.Save(data.Token); err != nil {
		return dto.LoginData{}, fmt.Errorf("saving session: %w", err)
	}
	return data, nil
}

func (c *Client) Logout() error {
	return c.session.Clear()
}

func (c *Client) FetchDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/drivers", nil, &drivers, true); err != nil {
		return nil, err
	}
	return drivers, nil
}

// CreateDriver validates the draft and, only if it is clean, submits it. The
// caller refetches the driver list on success: identifier and status are
// backend-generated.
func (c *Client) CreateDriver(ctx context.Context, draft validation.DriverDraft, vehicleType string, files validation.Attachments) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	if errs := validation.Validate(draft, files); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	body := dto.DriverCreateRequest{
		Name:            draft.Name,
		Phone:           draft.Phone,
		Email:           draft.Email,
		VehicleType:     vehicleType,
		VehicleNumber:   draft.VehicleNumber,
		LicenseNumber:   draft.LicenseNumber,
		AadharNumber:    draft.AadharNumber,
		PanNumber:       draft.PanNumber,
		IfscCode:        draft.IfscCode,
		BankAccount:     draft.BankAccount,
		MinWalletAmount: draft.MinWalletAmount,
	}
	_, err := c.do(ctx, http.MethodPost, "/api/drivers/create-simple", body, nil, true)
	return err
}

// ToggleStatus flips Live and Offline for one driver and returns the status
// the backend stored.
func (c *Client) ToggleStatus(ctx context.Context, id string) (string, error) {
	if err := c.acquire(); err != nil {
		return "", err
	}
	defer c.release()

	var data dto.StatusData
	path := fmt.Sprintf("/api/admin/driver/%s/toggle", id)
	if _, err := c.do(ctx, http.MethodPut, path, nil, &data, true); err != nil {
		return "", err
	}
	return data.Status, nil
}

// AddToWallet credits one driver's wallet and returns the server-computed
// balance, which is what the store must display.
func (c *Client) AddToWallet(ctx context.Context, id string, amount float64) (dto.WalletData, error) {
	if err := c.acquire(); err != nil {
		return dto.WalletData{}, err
	}
	defer c.release()

	if amount <= 0 {
		return dto.WalletData{}, &ValidationError{Fields: validation.Errors{
			"amount": "amount must be a positive number",
		}}
	}

	var data dto.WalletData
	path := fmt.Sprintf("/api/admin/direct-wallet/%s", id)
	if _, err := c.do(ctx, http.MethodPut, path, dto.WalletRequest{Amount: amount}, &data, true); err != nil {
		return dto.WalletData{}, err
	}
	return data, nil
}

// FetchUsers pages server-side; the returned total covers all registered
// users, not just the page.
func (c *Client) FetchUsers(ctx context.Context, page, limit int) ([]models.User, int, error) {
	var users []models.User
	path := fmt.Sprintf("/api/users/registered?page=%d&limit=%d", page, limit)
	env, err := c.do(ctx, http.MethodGet, path, nil, &users, true)
	if err != nil {
		return nil, 0, err
	}
	return users, env.Total, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if _, err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &user, true); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, upd dto.UserUpdateRequest) (models.User, error) {
	if err := c.acquire(); err != nil {
		return models.User{}, err
	}
	defer c.release()

	var user models.User
	if _, err := c.do(ctx, http.MethodPut, "/api/users/"+id, upd, &user, true); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	_, err := c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil, true)
	return err
}

func (c *Client) RidePrices(ctx context.Context) (models.RidePrices, error) {
	var prices models.RidePrices
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/ride-prices", nil, &prices, true); err != nil {
		return models.RidePrices{}, err
	}
	return prices, nil
}

func (c *Client) SaveRidePrices(ctx context.Context, prices models.RidePrices) error {
	if err := c.acquire(); err != nil {
		return err
	}
	defer c.release()

	_, err := c.do(ctx, http.MethodPost, "/api/admin/ride-prices", prices, nil, true)
	return err
}

// ExportSales downloads the sales workbook as raw bytes. The reply is a file,
// not the usual JSON envelope.
func (c *Client) ExportSales(ctx context.Context) ([]byte, error) {
	token := c.session.Token()
	if token == "" {
		return nil, ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/admin/sales/export", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.session.Clear()
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Status: resp.StatusCode, Message: "export failed"}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) Overview(ctx context.Context) (dto.Overview, error) {
	var overview dto.Overview
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/overview", nil, &overview, true); err != nil {
		return dto.Overview{}, err
	}
	return overview, nil
}

// do sends one request and decodes the reply envelope. A 401 clears the
// session before reporting ErrUnauthenticated.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, needAuth bool) (*envelope, error) {
	var token string
	if needAuth {
		token = c.session.Token()
		if token == "" {
			return nil, ErrUnauthenticated
		}
	}

	var bodyBytes []byte
	var err error
	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if needAuth {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = c.session.Clear()
		return nil, ErrUnauthenticated
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("unmarshaling response data: %w", err)
		}
	}
	return &env, nil
}

// acquire marks a mutation in flight; a second mutation while one is pending
// is refused rather than queued.
func (c *Client) acquire() error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	return nil
}

func (c *Client) release() {
	c.busy.Store(false)
}
