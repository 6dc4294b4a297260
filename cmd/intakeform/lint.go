package main

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-intakeform/pkg/model"
)

func lintCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check a form definition for ordinal and structure problems",
		RunE: func(cmd *cobra.Command, _ []string) error {
			form, err := loadForm(cmd, a.cfg)
			if err != nil {
				return err
			}

			issues := model.Lint(form)
			out := cmd.OutOrStdout()
			for _, issue := range issues {
				fmt.Fprintln(out, issue.String())
			}
			if len(issues) > 0 {
				return errors.Errorf("%d issue(s) found", len(issues))
			}
			fmt.Fprintf(out, "%s: %d sections, %d questions, ok\n", form.Header.Title, len(form.Sections), len(form.Questions()))
			return nil
		},
	}
}
