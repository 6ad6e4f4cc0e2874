package negociacao

import (
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/models"
)

type Repository interface {
	Salvar(db *gorm.DB, d *models.Deal) error
	ListarTodos(db *gorm.DB) ([]models.Deal, error)
	ContarPorCliente(db *gorm.DB, customerID int) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *models.Deal) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]models.Deal, error) {
	var list []models.Deal
	err := db.Order("customer_id").Order("product_id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ContarPorCliente(db *gorm.DB, customerID int) (int64, error) {
	var n int64
	err := db.Model(&models.Deal{}).Where("customer_id = ?", customerID).Count(&n).Error
	return n, err
}
