// Package main provides the intakeform CLI. It renders, serves, prints and
// lints the business intake form.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-intakeform/internal/config"
	"github.com/goliatone/go-intakeform/internal/logger"
)

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// app carries state shared by subcommands once configuration is loaded.
type app struct {
	configPath string
	cfg        config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "intakeform",
		Short:         "Render and print the business intake form",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path (defaults to ./intakeform.yaml)")
	root.PersistentFlags().String("form", "", "form definition file (defaults to the built-in form)")
	root.PersistentFlags().String("theme", "", "theme name")
	root.PersistentFlags().String("variant", "", "theme variant (screen or print)")
	root.PersistentFlags().StringSlice("sections", nil, "sections to include, by id or title")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(a.configPath,
			bindFlag(cmd, "form.path", "form"),
			bindFlag(cmd, "theme.name", "theme"),
			bindFlag(cmd, "theme.variant", "variant"),
			bindFlag(cmd, "form.sections", "sections"),
			bindFlag(cmd, "form.format", "format"),
			bindFlag(cmd, "http.addr", "addr"),
			bindFlag(cmd, "print.command", "command"),
		)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := logger.Setup(cfg.Environment); err != nil {
			return err
		}
		a.cfg = cfg
		return nil
	}

	root.AddCommand(
		renderCommand(a),
		serveCommand(a),
		printCommand(a),
		lintCommand(a),
	)
	return root
}
