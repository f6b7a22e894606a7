package specification

import (
	"errors"
	"time"
)

const (
	metricEvaluationDuration = "specification_evaluation_duration_seconds"
	metricEvaluationsTotal   = "specification_evaluations_total"

	logMsgEvaluated = "specification evaluated"

	labelSpecification = "specification"
	labelSatisfied     = "satisfied"

	logAttrSpecification = "specification"
	logAttrSatisfied     = "satisfied"
	logAttrDurationMS    = "duration_ms"
)

// ErrEmptyInstrumentName is returned when WithName is given an empty name.
var ErrEmptyInstrumentName = errors.New("instrument name must not be empty")

// InstrumentOption defines a functional option for configuring Instrument.
type InstrumentOption func(*instrumentConfig) error

type instrumentConfig struct {
	name    string
	logger  Logger
	metrics MetricsCollector
}

// WithName sets the name reported in log attributes and metric labels.
func WithName(name string) InstrumentOption {
	return func(cfg *instrumentConfig) error {
		if name == "" {
			return ErrEmptyInstrumentName
		}

		cfg.name = name

		return nil
	}
}

// WithLogger enables debug logging of evaluation outcomes.
func WithLogger(logger Logger) InstrumentOption {
	return func(cfg *instrumentConfig) error {
		cfg.logger = logger

		return nil
	}
}

// WithMetrics enables recording of evaluation counts and durations.
func WithMetrics(metrics MetricsCollector) InstrumentOption {
	return func(cfg *instrumentConfig) error {
		cfg.metrics = metrics

		return nil
	}
}

// Instrument wraps spec so that every evaluation is reported to the configured
// Logger and MetricsCollector. The wrapped specification returns exactly the same
// results as spec; instrumentation never alters evaluation.
//
// Returns ErrUnboundSpecification if spec is unbound, or the error of a rejected option.
func Instrument[T any](spec Specification[T], options ...InstrumentOption) (Specification[T], error) {
	if !spec.IsBound() {
		return Specification[T]{}, ErrUnboundSpecification
	}

	cfg := instrumentConfig{name: "unnamed"}
	for _, option := range options {
		if optionErr := option(&cfg); optionErr != nil {
			return Specification[T]{}, optionErr
		}
	}

	return Specification[T]{eval: instrumented[T]{inner: spec.eval, cfg: cfg}}, nil
}

type instrumented[T any] struct {
	inner evaluator[T]
	cfg   instrumentConfig
}

func (i instrumented[T]) isSatisfiedBy(candidate T) bool {
	start := time.Now()
	satisfied := i.inner.isSatisfiedBy(candidate)
	duration := time.Since(start)

	if i.cfg.metrics != nil {
		labels := map[string]string{
			labelSpecification: i.cfg.name,
			labelSatisfied:     boolLabel(satisfied),
		}
		i.cfg.metrics.RecordDuration(metricEvaluationDuration, duration, labels)
		i.cfg.metrics.IncrementCounter(metricEvaluationsTotal, labels)
	}

	if i.cfg.logger != nil {
		i.cfg.logger.Debug(
			logMsgEvaluated,
			logAttrSpecification, i.cfg.name,
			logAttrSatisfied, satisfied,
			logAttrDurationMS, duration.Milliseconds(),
		)
	}

	return satisfied
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}

	return "false"
}
