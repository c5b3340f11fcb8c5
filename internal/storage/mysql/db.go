package mysql

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/campusboard/server/internal/config"
)

// DSN builds the driver connection string. On Cloud Run with a Cloud SQL
// instance configured the connection goes through the connector's unix
// socket; everywhere else it is plain TCP (locally usually the Cloud SQL
// proxy on 127.0.0.1:3306).
func DSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Name
	mc.Params = map[string]string{"charset": "utf8mb4"}

	if cfg.CloudRun && cfg.InstanceConnection != "" {
		mc.Net = "unix"
		mc.Addr = "/cloudsql/" + cfg.InstanceConnection
	} else {
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	}
	return mc.FormatDSN()
}

// Connect opens and pings the database.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxConnections)
	return db, nil
}
