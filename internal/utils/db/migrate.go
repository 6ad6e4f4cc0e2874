package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/models"
)

// Produtos e clientes inseridos na primeira criação do schema.
var (
	SeedProducts = []models.Product{
		{ID: 1, Good: "hat", Price: 10.0, Category: "clothes"},
		{ID: 2, Good: "bmw", Price: 1000.0, Category: "cars"},
		{ID: 3, Good: "audi", Price: 1100.0, Category: "cars"},
		{ID: 4, Good: "fiat", Price: 800.0, Category: "cars"},
	}
	SeedCustomers = []models.Customer{
		{ID: 1, Name: "Ignat"},
		{ID: 2, Name: "Ivan"},
	}
)

// Migrate cria só as tabelas que faltam; tabela existente não é alterada.
// Produtos e clientes iniciais entram apenas na tabela recém-criada.
// Retorna true quando algum dado inicial foi inserido.
func Migrate(ctx context.Context, database *gorm.DB) (bool, error) {
	database = database.WithContext(ctx)
	m := database.Migrator()

	// ordem importa: deals referencia as outras duas
	created := map[string]bool{}
	for _, model := range []any{&models.Product{}, &models.Customer{}, &models.Deal{}} {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return false, errors.Wrapf(err, "create table for %T", model)
		}
		created[tableName(model)] = true
	}
	if !created["products"] && !created["customers"] {
		return false, nil
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		if created["products"] {
			products := append([]models.Product(nil), SeedProducts...)
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
			if err := fixSequence(tx, "products", "product_id"); err != nil {
				return err
			}
		}
		if created["customers"] {
			customers := append([]models.Customer(nil), SeedCustomers...)
			if err := tx.Create(&customers).Error; err != nil {
				return err
			}
			if err := fixSequence(tx, "customers", "customer_id"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "seed database")
	}
	slog.Info("database schema created", "products_seeded", created["products"], "customers_seeded", created["customers"])
	return true, nil
}

func tableName(model any) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return ""
}

// IDs explícitos não avançam as sequences do postgres.
func fixSequence(tx *gorm.DB, table, column string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	q := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', '%s'), (SELECT MAX(%s) FROM %s))",
		table, column, column, table)
	return tx.Exec(q).Error
}
