package db

import (
	"context"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/config"
)

// GetDB monta a conexão a partir da configuração carregada. Quando há um
// SecretId, as credenciais vêm do Secrets Manager (ou de DB_USERNAME/DB_PASSWORD).
func GetDB(ctx context.Context, cfg *config.Config, logOutput io.Writer) (*gorm.DB, error) {
	dsn := cfg.ConnectionString("DefaultConnection")

	if cfg.Database.SecretID != "" {
		if cfg.Database.Driver == config.DriverSQLite {
			slog.Warn("ignoring database secret for sqlite", "secret_id", cfg.Database.SecretID)
		} else {
			creds, err := retrieveCredentials(ctx, newSecretsClient, cfg.Database.SecretID)
			if err != nil {
				return nil, err
			}
			dsn, err = withCredentials(cfg.Database.Driver, dsn, creds)
			if err != nil {
				return nil, err
			}
		}
	}

	database, err := ConnectDataBase(cfg.Database.Driver, dsn, NewLogger(logOutput, cfg.Database.LogLevel))
	if err != nil {
		return nil, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	slog.Info("database connected", "driver", cfg.Database.Driver, "max_open_conns", cfg.Database.MaxOpenConns)
	return database, nil
}
