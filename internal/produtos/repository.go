// internal/produtos/repository.go
package produtos

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/models"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll(ctx context.Context) ([]models.Product, error) {
	var produtos []models.Product
	err := r.DB.WithContext(ctx).Order("product_id").Find(&produtos).Error
	return produtos, err
}

func (r *Repository) Create(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// FindByID retorna nil, nil quando o produto não existe.
func (r *Repository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	var p models.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Save(p).Error
}

func (r *Repository) Delete(ctx context.Context, p *models.Product) error {
	return r.DB.WithContext(ctx).Delete(p).Error
}
