package clientes

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/models"
	"github.com/KromaEnergia/loja-cli/internal/utils/prompt"
)

const DefaultName = "anybody"

// Handler encapsula o DB, o Repository e o console
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	IO         *prompt.Prompt
}

func NewHandler(db *gorm.DB, io *prompt.Prompt) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		IO:         io,
	}
}

func (h *Handler) List(ctx context.Context) error {
	clientes, err := h.Repository.ListarTodos(h.DB.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "list customers")
	}
	for _, c := range clientes {
		h.IO.Println(c.String())
	}
	return nil
}

func (h *Handler) Create(ctx context.Context) error {
	name, err := h.IO.AskOr("Enter name:", DefaultName)
	if err != nil {
		return err
	}

	c := models.Customer{Name: name}
	if err := h.Repository.Criar(h.DB.WithContext(ctx), &c); err != nil {
		return errors.Wrap(err, "create customer")
	}
	slog.Info("customer created", "id", c.ID)
	h.IO.Printf("Customer #%d has been created!\n", c.ID)
	return nil
}

func (h *Handler) Read(ctx context.Context, id int) error {
	c, err := h.Repository.BuscarPorID(h.DB.WithContext(ctx), id)
	if err != nil {
		return errors.Wrapf(err, "find customer %d", id)
	}
	if c == nil {
		h.IO.Printf("Customer #%d not found\n", id)
		return nil
	}
	h.IO.Println(c.String())
	return nil
}

func (h *Handler) Update(ctx context.Context, id int) error {
	db := h.DB.WithContext(ctx)
	c, err := h.Repository.BuscarPorID(db, id)
	if err != nil {
		return errors.Wrapf(err, "find customer %d", id)
	}
	if c == nil {
		h.IO.Printf("Customer #%d not found\n", id)
		return nil
	}

	h.IO.Printf("Current customer: %s\n", c)
	if c.Name, err = h.IO.AskKeep("Enter new name [empty = without changes]:", c.Name); err != nil {
		return err
	}
	if err := h.Repository.Atualizar(db, c); err != nil {
		return errors.Wrapf(err, "update customer %d", id)
	}
	slog.Info("customer updated", "id", c.ID)
	return nil
}

// Delete remove o cliente; os negócios dele caem junto (ON DELETE CASCADE)
func (h *Handler) Delete(ctx context.Context, id int) error {
	db := h.DB.WithContext(ctx)
	c, err := h.Repository.BuscarPorID(db, id)
	if err != nil {
		return errors.Wrapf(err, "find customer %d", id)
	}
	if c == nil {
		h.IO.Printf("Customer #%d is not exist!\n", id)
		return nil
	}
	if err := h.Repository.Deletar(db, c); err != nil {
		return errors.Wrapf(err, "delete customer %d", id)
	}
	slog.Info("customer removed", "id", c.ID)
	h.IO.Printf("Customer #%d has been removed!\n", c.ID)
	return nil
}
