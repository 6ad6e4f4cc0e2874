// Package dbtest abre bancos sqlite em memória já migrados para os testes.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KromaEnergia/loja-cli/internal/config"
	"github.com/KromaEnergia/loja-cli/internal/utils/db"
)

const memoryDSN = "file::memory:?_foreign_keys=on"

// Open devolve um banco novo com schema e dados iniciais.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	database := OpenEmpty(t)
	_, err := db.Migrate(context.Background(), database)
	require.NoError(t, err)
	return database
}

// OpenEmpty devolve um banco novo sem nenhuma tabela.
func OpenEmpty(t testing.TB) *gorm.DB {
	t.Helper()
	database, err := db.ConnectDataBase(config.DriverSQLite, memoryDSN, logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	// cada conexão nova seria um banco em memória diferente
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return database
}

// Count retorna o número de linhas do model.
func Count(t testing.TB, database *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.Model(model).Count(&n).Error)
	return n
}
