package ports

import "github.com/jackc/pgx/v5"

type IDB interface {
	GetConn() *pgx.Conn
	IsAlive() error
	Close() error
}
