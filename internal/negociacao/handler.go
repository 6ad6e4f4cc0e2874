package negociacao

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/clientes"
	"github.com/KromaEnergia/loja-cli/internal/models"
	"github.com/KromaEnergia/loja-cli/internal/produtos"
	"github.com/KromaEnergia/loja-cli/internal/utils/prompt"
)

// Handler registra compras: precisa dos repositórios de cliente e produto
// para validar os IDs informados.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Clientes   clientes.Repository
	Produtos   *produtos.Repository
	IO         *prompt.Prompt
}

func NewHandler(db *gorm.DB, io *prompt.Prompt) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Clientes:   clientes.NewRepository(),
		Produtos:   produtos.NewRepository(db),
		IO:         io,
	}
}

// List imprime todos os negócios registrados (l d).
func (h *Handler) List(ctx context.Context) error {
	deals, err := h.Repository.ListarTodos(h.DB.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "list deals")
	}
	for _, d := range deals {
		h.IO.Println(d.String())
	}
	return nil
}

// Record conduz o fluxo do comando deal. Cliente ou produto inexistente
// aborta sem gravar nada.
func (h *Handler) Record(ctx context.Context) error {
	db := h.DB.WithContext(ctx)

	customerID, err := h.IO.AskInt("Enter your customer ID:")
	if err != nil {
		return err
	}
	customer, err := h.Clientes.BuscarPorID(db, customerID)
	if err != nil {
		return errors.Wrapf(err, "find customer %d", customerID)
	}
	if customer == nil {
		h.IO.Printf("Customer #%d not found\n", customerID)
		return nil
	}

	count, err := h.Repository.ContarPorCliente(db, customer.ID)
	if err != nil {
		return errors.Wrapf(err, "count deals of customer %d", customer.ID)
	}
	h.IO.Printf("Hello %s! Your deals amount is: %d\n", customer.Name, count)

	h.IO.Println("Our store has these products:")
	catalogo, err := h.Produtos.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "list products")
	}
	for _, p := range catalogo {
		h.IO.Println(p.String())
	}

	productID, err := h.IO.AskInt("What do you want to buy:")
	if err != nil {
		return err
	}
	product, err := h.Produtos.FindByID(ctx, productID)
	if err != nil {
		return errors.Wrapf(err, "find product %d", productID)
	}
	if product == nil {
		h.IO.Printf("Product #%d not found\n", productID)
		return nil
	}

	// quantidade fixa; data zero fica para o default da coluna
	deal := models.Deal{
		ProductID:  product.ID,
		CustomerID: customer.ID,
		Amount:     1,
		Date:       time.Time{},
	}
	if err := h.Repository.Salvar(db, &deal); err != nil {
		return errors.Wrapf(err, "record deal for customer %d and product %d", customer.ID, product.ID)
	}
	slog.Info("deal recorded", "customer_id", customer.ID, "product_id", product.ID)
	return nil
}
