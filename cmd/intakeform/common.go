package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-intakeform/internal/config"
	"github.com/goliatone/go-intakeform/pkg/definition"
	"github.com/goliatone/go-intakeform/pkg/model"
	"github.com/goliatone/go-intakeform/pkg/orchestrator"
)

// bindFlag maps a command flag onto a config key. Flags a command does not
// define are skipped.
func bindFlag(cmd *cobra.Command, key, name string) config.Binding {
	return func(v *viper.Viper) error {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return nil
		}
		return v.BindPFlag(key, flag)
	}
}

func formSource(cfg config.Config) definition.Source {
	if cfg.Form.Path == "" {
		return nil
	}
	return definition.SourceFromFile(cfg.Form.Path)
}

func newOrchestrator(cfg config.Config) *orchestrator.Orchestrator {
	options := []orchestrator.Option{
		orchestrator.WithTheme(cfg.Theme.Name, cfg.Theme.Variant),
	}
	if !cfg.Branding.Empty() {
		options = append(options, orchestrator.WithDecorators(cfg.Branding))
	}
	return orchestrator.New(options...)
}

func baseRequest(cfg config.Config) orchestrator.Request {
	return orchestrator.Request{
		Source:       formSource(cfg),
		Renderer:     cfg.Form.Format,
		ThemeName:    cfg.Theme.Name,
		ThemeVariant: cfg.Theme.Variant,
		Sections:     cfg.Form.Sections,
	}
}

func loadForm(cmd *cobra.Command, cfg config.Config) (model.Form, error) {
	return newOrchestrator(cfg).Form(cmd.Context(), formSource(cfg))
}
