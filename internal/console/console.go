// Package console implementa o laço de comandos: lê um comando, despacha
// para o handler da entidade e repete até "e" ou o fim da entrada.
package console

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/KromaEnergia/loja-cli/internal/utils/prompt"
)

const (
	Help          = "Commands list: [c,r,u,d,l,e]"
	CommandPrompt = Help + ". Enter the command:"
	Farewell      = "See you later!"
)

// EntityHandler é o CRUD de uma tabela (produtos, clientes).
type EntityHandler interface {
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Read(ctx context.Context, id int) error
	Update(ctx context.Context, id int) error
	Delete(ctx context.Context, id int) error
}

type DealHandler interface {
	List(ctx context.Context) error
	Record(ctx context.Context) error
}

type Console struct {
	IO        *prompt.Prompt
	Products  EntityHandler
	Customers EntityHandler
	Deals     DealHandler
}

func New(p *prompt.Prompt, products, customers EntityHandler, deals DealHandler) *Console {
	return &Console{IO: p, Products: products, Customers: customers, Deals: deals}
}

// Run só retorna erro para falhas que encerram a sessão: entrada numérica
// inválida ou erro de persistência.
func (c *Console) Run(ctx context.Context) error {
	for {
		line, err := c.IO.Ask(CommandPrompt)
		if errors.Is(err, prompt.ErrEndOfInput) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read command")
		}

		cmd := ParseCommand(line)
		slog.Debug("command received", "command", cmd)
		if cmd == CommandExit {
			break
		}
		if err := c.dispatch(ctx, cmd); err != nil {
			if errors.Is(err, prompt.ErrEndOfInput) {
				break
			}
			return errors.Wrapf(err, "%s command", cmd)
		}
	}

	c.IO.Println(Farewell)
	return nil
}

func (c *Console) dispatch(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandList:
		return c.list(ctx)
	case CommandCreate:
		return c.create(ctx)
	case CommandRead:
		return c.withID(ctx, "What do you want to see [p=products,c=customers]:", EntityHandler.Read)
	case CommandUpdate:
		return c.withID(ctx, "What do you want to update [p=products,c=customers]:", EntityHandler.Update)
	case CommandDelete:
		return c.withID(ctx, "What do you want to remove [p=products,c=customers]:", EntityHandler.Delete)
	case CommandDeal:
		return c.Deals.Record(ctx)
	default:
		c.IO.Printf("Unknown command. %s\n", Help)
		return nil
	}
}

func (c *Console) list(ctx context.Context) error {
	entity, err := c.askEntity("What do you want to see [p=products,c=customers,d=deals]:")
	if err != nil {
		return err
	}
	switch entity {
	case EntityProduct:
		return c.Products.List(ctx)
	case EntityCustomer:
		return c.Customers.List(ctx)
	case EntityDeal:
		return c.Deals.List(ctx)
	default:
		c.unknownEntity()
		return nil
	}
}

func (c *Console) create(ctx context.Context) error {
	entity, err := c.askEntity("What do you want to create [p=products,c=customers]:")
	if err != nil {
		return err
	}
	h := c.handlerFor(entity)
	if h == nil {
		c.unknownEntity()
		return nil
	}
	return h.Create(ctx)
}

// withID pergunta a entidade e o ID (nessa ordem, antes de validar a
// entidade) e aplica op.
func (c *Console) withID(ctx context.Context, question string, op func(EntityHandler, context.Context, int) error) error {
	entity, err := c.askEntity(question)
	if err != nil {
		return err
	}
	id, err := c.IO.AskInt("Enter ID:")
	if err != nil {
		return err
	}
	h := c.handlerFor(entity)
	if h == nil {
		c.unknownEntity()
		return nil
	}
	return op(h, ctx, id)
}

func (c *Console) askEntity(question string) (Entity, error) {
	answer, err := c.IO.Ask(question)
	if err != nil {
		return EntityUnknown, err
	}
	entity := ParseEntity(answer)
	slog.Debug("entity selected", "entity", entity)
	return entity, nil
}

func (c *Console) handlerFor(entity Entity) EntityHandler {
	switch entity {
	case EntityProduct:
		return c.Products
	case EntityCustomer:
		return c.Customers
	default:
		return nil
	}
}

func (c *Console) unknownEntity() {
	c.IO.Println("Unknown entity")
}
