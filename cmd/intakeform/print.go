package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-intakeform/pkg/printing"
	"github.com/goliatone/go-intakeform/pkg/render"
	"github.com/goliatone/go-intakeform/pkg/renderers/text"
)

func printCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Send the form to the system print spooler",
		Long: "Renders the form and hands it to the configured spooler command (lp by default).\n" +
			"Spooler failures are logged and do not change the exit status.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			orch := newOrchestrator(a.cfg)

			req := baseRequest(a.cfg)
			req.Renderer = format
			if req.Renderer == "" {
				req.Renderer = a.cfg.Print.Format
			}
			req.HidePrintControl = true
			req.Plain = true

			output, err := orch.Generate(ctx, req)
			if err != nil {
				return err
			}
			renderer, err := orch.Renderer(req.Renderer)
			if err != nil {
				return err
			}

			facility := printing.NewCommandFacility(a.cfg.Print.Args...)
			facility.Command = a.cfg.Print.Command

			printing.NewTrigger(facility, printJob(renderer, output)).Activate(ctx)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "document format sent to the spooler: text or html")
	cmd.Flags().String("command", "", "spooler command (defaults to lp)")
	return cmd
}

func printJob(renderer render.Renderer, data []byte) printing.Job {
	name := "business-intake-form"
	if renderer.Name() == text.Name {
		name += ".txt"
	} else {
		name += ".html"
	}
	return printing.Job{
		Name:        name,
		ContentType: renderer.ContentType(),
		Data:        data,
	}
}
