package generator

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// GenerateEvent describes one document generation attempt.
type GenerateEvent struct {
	OutputPath string
	Duration   time.Duration
	Bytes      int
	Success    bool
	Err        error
	StartedAt  time.Time
}

// Observer receives generation events.
type Observer interface {
	ObserveGenerate(ctx context.Context, event GenerateEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveGenerate(context.Context, GenerateEvent) {}

type logObserver struct {
	logger *zap.Logger
}

// NewLogObserver reports generation events to logger.
func NewLogObserver(logger *zap.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveGenerate(_ context.Context, event GenerateEvent) {
	fields := []zap.Field{
		zap.String("output_path", event.OutputPath),
		zap.Int64("duration_ms", event.Duration.Milliseconds()),
		zap.Int("bytes", event.Bytes),
		zap.Bool("success", event.Success),
	}
	if event.Err != nil {
		o.logger.Error("generate_application", append(fields, zap.Error(event.Err))...)
		return
	}
	o.logger.Info("generate_application", fields...)
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
