package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/KromaEnergia/loja-cli/internal/clientes"
	"github.com/KromaEnergia/loja-cli/internal/config"
	"github.com/KromaEnergia/loja-cli/internal/console"
	"github.com/KromaEnergia/loja-cli/internal/logging"
	"github.com/KromaEnergia/loja-cli/internal/negociacao"
	"github.com/KromaEnergia/loja-cli/internal/produtos"
	"github.com/KromaEnergia/loja-cli/internal/utils/db"
	"github.com/KromaEnergia/loja-cli/internal/utils/prompt"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("session terminated", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, envFile string

	cmd := &cobra.Command{
		Use:           "loja",
		Short:         "Console de produtos, clientes e negócios",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configPath, envFile, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.DefaultFile, "arquivo JSON de configuração")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "arquivo .env carregado antes da configuração")
	return cmd
}

func run(ctx context.Context, configPath, envFile string, in io.Reader, out io.Writer) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logOutput, err := logging.Init(cfg.Logging)
	if err != nil {
		return errors.Wrap(err, "init logging")
	}
	defer logging.Close()
	slog.Info("starting", "config", configPath, "driver", cfg.Database.Driver)

	database, err := db.GetDB(ctx, cfg, logOutput)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(database); err != nil {
			slog.Warn("close database", "error", err)
		}
	}()

	if _, err := db.Migrate(ctx, database); err != nil {
		return err
	}

	// Handlers
	p := prompt.New(in, out)
	produtosHandler := produtos.NewHandler(produtos.NewRepository(database), p)
	clientesHandler := clientes.NewHandler(database, p)
	negociacaoHandler := negociacao.NewHandler(database, p)

	return console.New(p, produtosHandler, clientesHandler, negociacaoHandler).Run(ctx)
}
