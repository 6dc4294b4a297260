package prompt

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts the wizard or input ends.
var ErrAborted = errors.New("prompt: aborted")

// ConfirmConfig describes a yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig describes a pick-one or pick-many question. DefaultIndex is
// used by Select, Defaults by MultiSelect. Required makes MultiSelect reject
// an empty answer.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Defaults     []int
	Help         string
	PageSize     int
	Required     bool
}

// Driver abstracts the terminal so the wizard can be tested without one.
type Driver interface {
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error)
}

type surveyDriver struct {
	opts []survey.AskOpt
}

// NewSurveyDriver returns a Driver backed by survey prompts. opts are passed
// to every question, e.g. survey.WithStdio to run against other streams.
func NewSurveyDriver(opts ...survey.AskOpt) Driver {
	return surveyDriver{opts: slices.Clone(opts)}
}

func (d surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	if err := survey.AskOne(confirmPrompt(cfg), &out, d.opts...); err != nil {
		return false, translateErr(err)
	}
	return out, nil
}

func (d surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out int
	if err := survey.AskOne(selectPrompt(cfg), &out, d.opts...); err != nil {
		return 0, translateErr(err)
	}
	return out, nil
}

func (d surveyDriver) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []int
	if err := survey.AskOne(multiSelectPrompt(cfg), &out, multiSelectOpts(cfg, d.opts)...); err != nil {
		return nil, translateErr(err)
	}
	slices.Sort(out)
	return out, nil
}

func confirmPrompt(cfg ConfirmConfig) *survey.Confirm {
	return &survey.Confirm{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
}

func selectPrompt(cfg SelectConfig) *survey.Select {
	prompt := &survey.Select{
		Message:  cfg.Message,
		Options:  cfg.Options,
		Help:     cfg.Help,
		PageSize: cfg.PageSize,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.DefaultIndex
	}
	return prompt
}

func multiSelectPrompt(cfg SelectConfig) *survey.MultiSelect {
	prompt := &survey.MultiSelect{
		Message:  cfg.Message,
		Options:  cfg.Options,
		Help:     cfg.Help,
		PageSize: cfg.PageSize,
	}
	if defaults := validIndices(cfg.Options, cfg.Defaults); len(defaults) > 0 {
		prompt.Default = defaults
	}
	return prompt
}

func multiSelectOpts(cfg SelectConfig, base []survey.AskOpt) []survey.AskOpt {
	opts := slices.Clone(base)
	if validate := multiSelectValidator(cfg); validate != nil {
		opts = append(opts, survey.WithValidator(validate))
	}
	return opts
}

func multiSelectValidator(cfg SelectConfig) survey.Validator {
	if !cfg.Required {
		return nil
	}
	return survey.MinItems(1)
}

// translateErr maps Ctrl+C and closed input to ErrAborted.
func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	return slices.Index(options, value)
}

func validIndices(options []string, indices []int) []int {
	var out []int
	for _, idx := range indices {
		if idx >= 0 && idx < len(options) && !slices.Contains(out, idx) {
			out = append(out, idx)
		}
	}
	return out
}
