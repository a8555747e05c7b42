package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/moonsim/internal/cycle"
	"github.com/san-kum/moonsim/internal/dynamo"
)

// maxRecordPrealloc caps the up-front trajectory allocation; longer
// recordings grow by append.
const maxRecordPrealloc = 4096

type Simulator struct {
	sys       dynamo.System
	metrics   []dynamo.Metric
	observers []dynamo.Observer
}

func New(sys dynamo.System) *Simulator {
	return &Simulator{
		sys:       sys,
		metrics:   make([]dynamo.Metric, 0),
		observers: make([]dynamo.Observer, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o dynamo.Observer) { s.observers = append(s.observers, o) }

// Run simulates a copy of x0 according to cfg. On failure the partial
// result is returned together with the error.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg Config) (*Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}
	if cfg.CheckEvery <= 0 {
		cfg.CheckEvery = DefaultCheckEvery
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	result := &Result{
		Mode:    cfg.Mode,
		Metrics: make(map[string]int64),
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	if cfg.Record {
		capacity := min(cfg.Steps+1, maxRecordPrealloc)
		if cfg.Mode == ModePeriod || capacity < 1 {
			capacity = 1
		}
		result.States = make([]dynamo.State, 0, capacity)
		result.States = append(result.States, x.Clone())
	}

	var detector *cycle.Detector
	if cfg.Mode == ModePeriod {
		detector = cycle.NewDetector(x0)
	}

	var runErr error
	for step := int64(1); ; step++ {
		if cfg.Mode == ModeEnergy && step > cfg.Steps {
			break
		}
		if cfg.Mode == ModePeriod && cfg.MaxSteps > 0 && step > cfg.MaxSteps {
			runErr = &dynamo.SimulationError{Step: cfg.MaxSteps, Wrapped: dynamo.ErrNoRecurrence}
			break
		}
		if step == 1 || step%cfg.CheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				runErr = &dynamo.SimulationError{
					Step:    result.StepsTaken,
					Wrapped: fmt.Errorf("%w: %w", dynamo.ErrCanceled, err),
				}
				break
			}
		}

		s.sys.Step(x)
		result.StepsTaken = step

		for _, m := range s.metrics {
			m.Observe(x, step)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, step)
		}
		if cfg.Record {
			result.States = append(result.States, x.Clone())
		}

		if detector != nil {
			for _, a := range detector.Observe(x, step) {
				s.notifyRecurrence(a, step, x)
			}
			if detector.Done() {
				break
			}
		}
	}

	result.Final = x
	result.Energy = s.computeEnergy(x)
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	if detector != nil {
		result.Periods = detector.Periods()
		if runErr == nil {
			period, err := detector.Period()
			if err != nil {
				return result, err
			}
			result.Period = period
		}
	}

	return result, runErr
}

func (s *Simulator) validate(x0 dynamo.State, cfg Config) error {
	if len(x0) == 0 {
		return dynamo.ErrEmptySystem
	}
	switch cfg.Mode {
	case ModeEnergy, ModePeriod:
	default:
		return fmt.Errorf("%w: unknown mode %d", dynamo.ErrInvalidConfig, int(cfg.Mode))
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: steps must be non-negative, got %d", dynamo.ErrInvalidConfig, cfg.Steps)
	}
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("%w: max steps must be non-negative, got %d", dynamo.ErrInvalidConfig, cfg.MaxSteps)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be non-negative, got %s", dynamo.ErrInvalidConfig, cfg.Timeout)
	}
	return nil
}

func (s *Simulator) computeEnergy(x dynamo.State) int64 {
	if h, ok := s.sys.(dynamo.Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

func (s *Simulator) notifyRecurrence(a dynamo.Axis, step int64, x dynamo.State) {
	for _, obs := range s.observers {
		if ro, ok := obs.(dynamo.RecurrenceObserver); ok {
			ro.OnRecurrence(a, step, x)
		}
	}
}
