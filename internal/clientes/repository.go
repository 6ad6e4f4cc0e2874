package clientes

import (
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/models"
)

type Repository interface {
	ListarTodos(db *gorm.DB) ([]models.Customer, error)
	Criar(db *gorm.DB, c *models.Customer) error
	BuscarPorID(db *gorm.DB, id int) (*models.Customer, error)
	Atualizar(db *gorm.DB, c *models.Customer) error
	Deletar(db *gorm.DB, c *models.Customer) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]models.Customer, error) {
	var clientes []models.Customer
	err := db.Order("customer_id").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *models.Customer) error {
	return db.Create(c).Error
}

// BuscarPorID retorna nil, nil quando o cliente não existe
func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id int) (*models.Customer, error) {
	var cliente models.Customer
	err := db.First(&cliente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *models.Customer) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, c *models.Customer) error {
	return db.Delete(c).Error
}
