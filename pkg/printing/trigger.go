package printing

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-intakeform/internal/logger"
)

// Trigger sends a prepared job to a facility when activated.
type Trigger struct {
	Facility Facility
	Job      Job
}

func NewTrigger(facility Facility, job Job) *Trigger {
	return &Trigger{Facility: facility, Job: job}
}

// Activate invokes the facility exactly once. Failures are logged and
// otherwise dropped.
func (t *Trigger) Activate(ctx context.Context) {
	if t == nil || t.Facility == nil {
		logger.Warn(ctx, "print trigger has no facility")
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	fields := []zap.Field{
		zap.String("job", t.Job.Name),
		zap.String("content_type", t.Job.ContentType),
		zap.Int("bytes", len(t.Job.Data)),
	}
	if err := t.Facility.Print(ctx, t.Job); err != nil {
		logger.Error(ctx, "print failed", append(fields, zap.Error(err))...)
		return
	}
	logger.Debug(ctx, "print job sent", fields...)
}
