// internal/produtos/handler.go
package produtos

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/KromaEnergia/loja-cli/internal/models"
	"github.com/KromaEnergia/loja-cli/internal/utils"
	"github.com/KromaEnergia/loja-cli/internal/utils/prompt"
)

// Valores usados quando o operador deixa o campo em branco na criação.
const (
	DefaultGood     = "something"
	DefaultPrice    = "100.0"
	DefaultCategory = "all"
)

type Handler struct {
	Repo *Repository
	IO   *prompt.Prompt
}

func NewHandler(repo *Repository, io *prompt.Prompt) *Handler {
	return &Handler{Repo: repo, IO: io}
}

// l p
func (h *Handler) List(ctx context.Context) error {
	produtos, err := h.Repo.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "list products")
	}
	for _, p := range produtos {
		h.IO.Println(p.String())
	}
	return nil
}

// c p
func (h *Handler) Create(ctx context.Context) error {
	good, err := h.IO.AskOr("Enter good:", DefaultGood)
	if err != nil {
		return err
	}
	rawPrice, err := h.IO.AskOr("Enter price:", DefaultPrice)
	if err != nil {
		return err
	}
	price, err := utils.ParsePrice(rawPrice)
	if err != nil {
		return err
	}
	category, err := h.IO.AskOr("Enter category:", DefaultCategory)
	if err != nil {
		return err
	}

	p := models.Product{Good: good, Price: price, Category: category}
	if err := h.Repo.Create(ctx, &p); err != nil {
		return errors.Wrap(err, "create product")
	}
	slog.Info("product created", "id", p.ID)
	h.IO.Printf("Product #%d has been created!\n", p.ID)
	return nil
}

// r p <id>
func (h *Handler) Read(ctx context.Context, id int) error {
	p, err := h.Repo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "find product %d", id)
	}
	if p == nil {
		h.IO.Printf("Product #%d not found\n", id)
		return nil
	}
	h.IO.Println(p.String())
	return nil
}

// u p <id>; campo em branco mantém o valor atual
func (h *Handler) Update(ctx context.Context, id int) error {
	p, err := h.Repo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "find product %d", id)
	}
	if p == nil {
		h.IO.Printf("Product #%d not found\n", id)
		return nil
	}

	h.IO.Printf("Current product: %s\n", p)
	if p.Good, err = h.IO.AskKeep("Enter new good [empty = without changes]:", p.Good); err != nil {
		return err
	}
	rawPrice, err := h.IO.AskKeep("Enter new price [empty = without changes]:", "")
	if err != nil {
		return err
	}
	if rawPrice != "" {
		if p.Price, err = utils.ParsePrice(rawPrice); err != nil {
			return err
		}
	}
	if p.Category, err = h.IO.AskKeep("Enter new category [empty = without changes]:", p.Category); err != nil {
		return err
	}

	if err := h.Repo.Update(ctx, p); err != nil {
		return errors.Wrapf(err, "update product %d", id)
	}
	slog.Info("product updated", "id", p.ID)
	return nil
}

// d p <id>
func (h *Handler) Delete(ctx context.Context, id int) error {
	p, err := h.Repo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "find product %d", id)
	}
	if p == nil {
		h.IO.Printf("Product #%d is not exist!\n", id)
		return nil
	}
	if err := h.Repo.Delete(ctx, p); err != nil {
		return errors.Wrapf(err, "delete product %d", id)
	}
	slog.Info("product removed", "id", p.ID)
	h.IO.Printf("Product #%d has been removed!\n", p.ID)
	return nil
}
