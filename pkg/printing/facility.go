package printing

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/go-faster/errors"
)

// Job is a rendered document ready to be printed.
type Job struct {
	Name        string
	ContentType string
	Data        []byte
}

// Facility accepts print jobs.
type Facility interface {
	Print(ctx context.Context, job Job) error
}

// FacilityFunc adapts a function to the Facility interface.
type FacilityFunc func(ctx context.Context, job Job) error

func (f FacilityFunc) Print(ctx context.Context, job Job) error {
	return f(ctx, job)
}

const DefaultCommand = "lp"

// CommandFacility pipes the job to an external spooler on stdin.
type CommandFacility struct {
	Command string
	Args    []string
	// TitleFlag, when set, is passed followed by the job name.
	TitleFlag string
}

// NewCommandFacility returns a facility that prints with lp.
func NewCommandFacility(args ...string) *CommandFacility {
	return &CommandFacility{Command: DefaultCommand, Args: args, TitleFlag: "-t"}
}

func (f *CommandFacility) Print(ctx context.Context, job Job) error {
	if f == nil {
		return errors.New("printing: nil command facility")
	}
	if len(job.Data) == 0 {
		return errors.New("printing: empty job")
	}

	command := strings.TrimSpace(f.Command)
	if command == "" {
		command = DefaultCommand
	}

	args := append([]string(nil), f.Args...)
	if f.TitleFlag != "" && job.Name != "" {
		args = append(args, f.TitleFlag, job.Name)
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdin = bytes.NewReader(job.Data)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return errors.Wrapf(err, "printing: %s: %s", command, msg)
		}
		return errors.Wrapf(err, "printing: %s", command)
	}
	return nil
}
