package workforce

import "github.com/rs/zerolog"

// Worker is the ability to perform a unit of work.
type Worker interface {
	Work()
}

// Eater is the ability to take a meal break.
type Eater interface {
	Eat()
}

// Sleeper is the ability to rest between shifts.
type Sleeper interface {
	Sleep()
}

// Human can work, eat and sleep.
type Human struct {
	Logger zerolog.Logger
}

// Work performs a unit of work.
func (h Human) Work() { h.Logger.Info().Str("worker", "human").Msg("working") }

// Eat takes a meal break.
func (h Human) Eat() { h.Logger.Info().Str("worker", "human").Msg("eating") }

// Sleep rests between shifts.
func (h Human) Sleep() { h.Logger.Info().Str("worker", "human").Msg("sleeping") }

// Robot only works. Callers that need meals or rest cannot be handed one.
type Robot struct {
	Logger zerolog.Logger
}

// Work performs a unit of work.
func (r Robot) Work() { r.Logger.Info().Str("worker", "robot").Msg("working") }

var (
	_ Worker  = Human{}
	_ Eater   = Human{}
	_ Sleeper = Human{}
	_ Worker  = Robot{}
)
