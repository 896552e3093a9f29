package observe

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/composable/pkg/rop"
	"github.com/ib-77/composable/pkg/rop/step"
)

type options struct {
	successLevel slog.Level
	failureLevel slog.Level
	logValues    bool
}

type Option func(*options)

// WithLevels sets the levels used for successful and failed applications.
func WithLevels(success, failure slog.Level) Option {
	return func(o *options) {
		o.successLevel = success
		o.failureLevel = failure
	}
}

// WithValues adds the input and output values to each record.
func WithValues() Option {
	return func(o *options) {
		o.logValues = true
	}
}

// Logged returns a step that applies s and logs the outcome. The outcome
// itself is returned unchanged.
func Logged[In, Out any](logger *slog.Logger, name string, s step.Step[In, Out], opts ...Option) step.Step[In, Out] {
	o := options{successLevel: slog.LevelDebug, failureLevel: slog.LevelWarn}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return step.Of(func(in In) rop.Result[Out] {
		call := uuid.New()
		start := time.Now()
		res := s.Apply(in)

		attrs := []slog.Attr{
			slog.String("step", name),
			slog.String("call_id", call.String()),
			slog.String("result_id", res.Id().String()),
			slog.Duration("elapsed", time.Since(start)),
		}
		if o.logValues {
			attrs = append(attrs, slog.Any("input", in))
			if res.IsSuccess() {
				attrs = append(attrs, slog.Any("output", res.Result()))
			}
		}

		if res.IsSuccess() {
			logger.LogAttrs(context.Background(), o.successLevel, "step applied", attrs...)
		} else {
			attrs = append(attrs, slog.String("error", errString(res.Err())))
			logger.LogAttrs(context.Background(), o.failureLevel, "step failed", attrs...)
		}
		return res
	})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
