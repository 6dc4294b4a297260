package printing_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-intakeform/internal/logger"
	"github.com/goliatone/go-intakeform/pkg/printing"
)

type countingFacility struct {
	calls int
	jobs  []printing.Job
	err   error
}

func (f *countingFacility) Print(_ context.Context, job printing.Job) error {
	f.calls++
	f.jobs = append(f.jobs, job)
	return f.err
}

func TestTrigger_ActivateCallsFacilityOnce(t *testing.T) {
	facility := &countingFacility{}
	job := printing.Job{Name: "intake", ContentType: "text/html", Data: []byte("<html></html>")}
	trigger := printing.NewTrigger(facility, job)

	trigger.Activate(context.Background())
	require.Equal(t, 1, facility.calls)
	require.Equal(t, job, facility.jobs[0])

	trigger.Activate(context.Background())
	require.Equal(t, 2, facility.calls)
}

func TestTrigger_FailureIsLoggedNotReturned(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	facility := &countingFacility{err: errors.New("printer offline")}
	printing.NewTrigger(facility, printing.Job{Name: "intake", Data: []byte("x")}).Activate(ctx)

	require.Equal(t, 1, facility.calls)
	entries := logs.FilterMessage("print failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "printer offline", entries[0].ContextMap()["error"])
}

func TestTrigger_NilFacility(t *testing.T) {
	require.NotPanics(t, func() {
		(&printing.Trigger{}).Activate(context.Background())
		var trigger *printing.Trigger
		trigger.Activate(context.Background())
	})
}

func TestFacilityFunc(t *testing.T) {
	var got printing.Job
	facility := printing.FacilityFunc(func(_ context.Context, job printing.Job) error {
		got = job
		return nil
	})
	require.NoError(t, facility.Print(context.Background(), printing.Job{Name: "a"}))
	require.Equal(t, "a", got.Name)
}

func TestCommandFacility(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out := filepath.Join(t.TempDir(), "spool.txt")
	facility := &printing.CommandFacility{Command: "sh", Args: []string{"-c", "cat > " + out}}
	require.NoError(t, facility.Print(context.Background(), printing.Job{Name: "intake", Data: []byte("hello")}))
	require.FileExists(t, out)

	failing := &printing.CommandFacility{Command: "sh", Args: []string{"-c", "echo jammed >&2; exit 3"}}
	err := failing.Print(context.Background(), printing.Job{Data: []byte("x")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "jammed")

	require.Error(t, facility.Print(context.Background(), printing.Job{}))
}

func TestNewCommandFacility_Defaults(t *testing.T) {
	facility := printing.NewCommandFacility("-d", "office")
	require.Equal(t, printing.DefaultCommand, facility.Command)
	require.Equal(t, []string{"-d", "office"}, facility.Args)
	require.Equal(t, "-t", facility.TitleFlag)
}
