package main

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-intakeform/internal/logger"
	"github.com/goliatone/go-intakeform/internal/prompt"
	"github.com/goliatone/go-intakeform/pkg/renderers/text"
)

func renderCommand(a *app) *cobra.Command {
	var (
		out         string
		noPrint     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the form as HTML or plain text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			req := baseRequest(a.cfg)
			req.HidePrintControl = noPrint

			if interactive {
				form, err := loadForm(cmd, a.cfg)
				if err != nil {
					return err
				}
				choices, err := prompt.Ask(ctx, prompt.NewSurveyDriver(), form, prompt.Choices{
					Format:    req.Renderer,
					Sections:  req.Sections,
					Variant:   req.ThemeVariant,
					ShowPrint: !noPrint,
				})
				if err != nil {
					return err
				}
				req.Renderer = choices.Format
				req.Sections = choices.Sections
				req.ThemeVariant = choices.Variant
				req.HidePrintControl = !choices.ShowPrint
			}

			if req.Renderer == text.Name && out != "" {
				req.Plain = true
			}

			output, err := newOrchestrator(a.cfg).Generate(ctx, req)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(output)
				return err
			}
			if err := os.WriteFile(out, output, 0o644); err != nil {
				return errors.Wrap(err, "write output")
			}
			logger.Info(ctx, "form written", zap.String("path", out), zap.Int("bytes", len(output)))
			return nil
		},
	}

	cmd.Flags().String("format", "", "output format: html or text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noPrint, "no-print-button", false, "omit the print button from HTML output")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "choose render settings with prompts")
	return cmd
}
