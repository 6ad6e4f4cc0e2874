package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/KromaEnergia/loja-cli/internal/config"
	"github.com/KromaEnergia/loja-cli/internal/models"
	"github.com/KromaEnergia/loja-cli/internal/utils/db"
	"github.com/KromaEnergia/loja-cli/internal/utils/db/dbtest"
)

func TestMigrateSeedsOnFirstRun(t *testing.T) {
	database := dbtest.OpenEmpty(t)

	seeded, err := db.Migrate(context.Background(), database)
	require.NoError(t, err)
	assert.True(t, seeded)

	assert.EqualValues(t, 4, dbtest.Count(t, database, &models.Product{}))
	assert.EqualValues(t, 2, dbtest.Count(t, database, &models.Customer{}))
	assert.EqualValues(t, 0, dbtest.Count(t, database, &models.Deal{}))

	var bmw models.Product
	require.NoError(t, database.First(&bmw, 2).Error)
	assert.Equal(t, "bmw", bmw.Good)
	assert.Equal(t, 1000.0, bmw.Price)
	assert.Equal(t, "cars", bmw.Category)

	var products []models.Product
	require.NoError(t, database.Order("product_id").Find(&products).Error)
	assert.Equal(t, db.SeedProducts, products)

	var ivan models.Customer
	require.NoError(t, database.First(&ivan, 2).Error)
	assert.Equal(t, "Ivan", ivan.Name)
}

func TestMigrateDoesNotReseed(t *testing.T) {
	database := dbtest.Open(t)
	require.NoError(t, database.Delete(&models.Customer{}, 1).Error)

	seeded, err := db.Migrate(context.Background(), database)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.EqualValues(t, 1, dbtest.Count(t, database, &models.Customer{}))
}

func TestNewIDsFollowSeed(t *testing.T) {
	database := dbtest.Open(t)

	p := models.Product{Good: "kia", Price: 700, Category: "cars"}
	require.NoError(t, database.Create(&p).Error)
	assert.Equal(t, 5, p.ID)
}

func TestDealDefaultsAndCascade(t *testing.T) {
	database := dbtest.Open(t)

	require.NoError(t, database.Create(&models.Deal{ProductID: 2, CustomerID: 1}).Error)
	var deal models.Deal
	require.NoError(t, database.First(&deal, "product_id = ? AND customer_id = ?", 2, 1).Error)
	assert.Equal(t, 1, deal.Amount)

	// chave composta: um negócio por par
	assert.Error(t, database.Create(&models.Deal{ProductID: 2, CustomerID: 1, Amount: 1}).Error)

	// FK obrigatória
	assert.Error(t, database.Create(&models.Deal{ProductID: 99, CustomerID: 1, Amount: 1}).Error)

	require.NoError(t, database.Delete(&models.Product{ID: 2}).Error)
	assert.EqualValues(t, 0, dbtest.Count(t, database, &models.Deal{}))
}

func TestMigrateSeedsOnlyNewTables(t *testing.T) {
	database := dbtest.OpenEmpty(t)
	require.NoError(t, database.Migrator().CreateTable(&models.Customer{}))
	require.NoError(t, database.Create(&models.Customer{ID: 1, Name: "Zed"}).Error)

	seeded, err := db.Migrate(context.Background(), database)
	require.NoError(t, err)
	assert.True(t, seeded)

	assert.EqualValues(t, 4, dbtest.Count(t, database, &models.Product{}))
	assert.EqualValues(t, 1, dbtest.Count(t, database, &models.Customer{}))
	var zed models.Customer
	require.NoError(t, database.First(&zed, 1).Error)
	assert.Equal(t, "Zed", zed.Name)
	assert.True(t, database.Migrator().HasTable(&models.Deal{}))
}

func TestMigrateKeepsExistingTable(t *testing.T) {
	database := dbtest.OpenEmpty(t)
	require.NoError(t, database.Exec("CREATE TABLE products (product_id integer PRIMARY KEY, good text NOT NULL)").Error)

	_, err := db.Migrate(context.Background(), database)
	require.NoError(t, err)

	m := database.Migrator()
	assert.False(t, m.HasColumn(&models.Product{}, "price"))
	assert.EqualValues(t, 2, dbtest.Count(t, database, &models.Customer{}))
	assert.True(t, m.HasTable(&models.Deal{}))
}

func TestSQLiteCascadeWithoutDSNFlag(t *testing.T) {
	database, err := db.ConnectDataBase(config.DriverSQLite, "file::memory:", logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = db.Migrate(context.Background(), database)
	require.NoError(t, err)
	require.NoError(t, database.Create(&models.Deal{ProductID: 1, CustomerID: 2, Amount: 1}).Error)

	require.NoError(t, database.Delete(&models.Product{ID: 1}).Error)
	assert.EqualValues(t, 0, dbtest.Count(t, database, &models.Deal{}))
}
