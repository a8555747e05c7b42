package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/moonsim/internal/dynamo"
)

// Mode selects what a run computes.
type Mode int

const (
	// ModeEnergy runs a fixed number of ticks and reports the total energy.
	ModeEnergy Mode = iota
	// ModePeriod runs until every axis has recurred and reports the period.
	ModePeriod
)

func (m Mode) String() string {
	switch m {
	case ModeEnergy:
		return "energy"
	case ModePeriod:
		return "period"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "energy", "":
		return ModeEnergy, nil
	case "period":
		return ModePeriod, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q (want energy or period)", dynamo.ErrInvalidConfig, s)
}

type Config struct {
	Mode Mode
	// Steps is the tick count of an energy run.
	Steps int64
	// MaxSteps bounds a period run; zero means unbounded.
	MaxSteps int64
	// Timeout bounds the wall time of a run; zero means none.
	Timeout time.Duration
	// Record keeps every state of the run in Result.States.
	Record bool
	// CheckEvery is how often, in ticks, the context is polled.
	CheckEvery int64
}

const (
	DefaultSteps      = 1000
	DefaultCheckEvery = 1024
)

func DefaultConfig() Config {
	return Config{
		Mode:       ModeEnergy,
		Steps:      DefaultSteps,
		CheckEvery: DefaultCheckEvery,
	}
}

type Result struct {
	Mode       Mode
	StepsTaken int64
	// Energy is the total energy of the final state.
	Energy int64
	// Periods holds the recurrence tick per axis; zero while not found.
	Periods [3]int64
	// Period is the full-system recurrence period.
	Period  int64
	Final   dynamo.State
	States  []dynamo.State
	Metrics map[string]int64
}
