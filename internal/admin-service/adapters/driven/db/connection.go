package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"fleet-admin/internal/admin-service/core/ports"
	"fleet-admin/internal/applog"
	"fleet-admin/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
)

type DB struct {
	ctx   context.Context
	cfg   *config.DBconfig
	mylog applog.Logger
	conn  *pgx.Conn
	mu    *sync.Mutex
}

// Start connects, applies pending migrations and returns the DB adapter.
func Start(ctx context.Context, dbCfg *config.DBconfig, mylog applog.Logger) (ports.IDB, error) {
	d := &DB{
		cfg:   dbCfg,
		ctx:   ctx,
		mylog: mylog,
		mu:    &sync.Mutex{},
	}

	if err := d.connect(); err != nil {
		return nil, err
	}

	if err := d.migrateUp(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *DB) GetConn() *pgx.Conn {
	return d.conn
}

// Close closes the connection
func (d *DB) Close() error {
	if err := d.conn.Close(d.ctx); err != nil {
		return fmt.Errorf("close database connection: %v", err)
	}
	return nil
}

// IsAlive pings the DB and reconnects once if the ping fails
func (d *DB) IsAlive() error {
	if d.conn == nil {
		return fmt.Errorf("DB is not initialized")
	}
	if err := d.conn.Ping(d.ctx); err != nil {
		if connectionErr := d.connect(); connectionErr != nil {
			return fmt.Errorf("ping failed: %w", err)
		}
	}

	return nil
}

func (d *DB) connect() error {
	conn, err := pgx.Connect(d.ctx, d.url())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	d.conn = conn
	return nil
}

func (d *DB) migrateUp() error {
	cwd, _ := os.Getwd()
	mPath := filepath.Join(cwd, "migrations")

	m, err := migrate.New("file://"+mPath, d.url())
	if err != nil {
		d.mylog.Action("db_migrate").Warn("migration init error or no migrations found")
		return nil
	}
	if err = m.Up(); err != nil {
		if strings.Contains(err.Error(), "no change") {
			d.mylog.Action("db_migrate").Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("migration up: %w", err)
	}
	d.mylog.Action("db_migrate").Info("migrations applied")
	return nil
}

func (d *DB) url() string {
	return fmt.Sprintf(
		"postgres://%v:%v@%v:%v/%v?sslmode=disable",
		d.cfg.User,
		d.cfg.Password,
		d.cfg.Host,
		d.cfg.Port,
		d.cfg.Database,
	)
}
