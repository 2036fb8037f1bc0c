package mission

import (
	"io"
	"log"
	"math/rand/v2"
	"time"
)

// Config holds the rules a mission is played under.
type Config struct {
	StartBody    string   `json:"startBody"`
	StartFuel    int      `json:"startFuel"`
	StartHealth  int      `json:"startHealth"`
	InitialTasks []string `json:"initialTasks"` // free play only; levels offer their own

	AvailableCap        int `json:"availableCap"`
	TravelCompletedCap  int `json:"travelCompletedCap"`  // no refills after travel beyond this
	ObserveCompletedCap int `json:"observeCompletedCap"` // no refills after a scan beyond this

	TravelDelay time.Duration `json:"travelDelay"`
	ScanDelay   time.Duration `json:"scanDelay"`

	DamageChance      float64 `json:"damageChance"`
	DamageAmount      int     `json:"damageAmount"`
	FuelTrapThreshold int     `json:"fuelTrapThreshold"`
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		StartBody:           "earth",
		StartFuel:           MaxLevel,
		StartHealth:         MaxLevel,
		InitialTasks:        []string{"study-earth", "lunar-reconnaissance", "mars-geology"},
		AvailableCap:        3,
		TravelCompletedCap:  5,
		ObserveCompletedCap: 8,
		TravelDelay:         3000 * time.Millisecond,
		ScanDelay:           2000 * time.Millisecond,
		DamageChance:        0.3,
		DamageAmount:        15,
		FuelTrapThreshold:   20,
	}
}

// Option configures a Mission.
type Option func(*Mission)

// WithSeed makes hazard and refill draws reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Mission) {
		m.rng = rand.New(rand.NewPCG(seed, seed>>16|1))
	}
}

// WithRand replaces the random source outright.
func WithRand(r Rand) Option {
	return func(m *Mission) {
		m.rng = r
	}
}

// WithScheduler sets the timer source. The default is RealScheduler.
func WithScheduler(s Scheduler) Option {
	return func(m *Mission) {
		m.sched = s
	}
}

// WithLogger sets where the mission logs. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(m *Mission) {
		m.logger = l
	}
}

// WithLevel plays a curated level: its task list becomes the task pool
// and the initial offer, and its start body and fuel override the config.
func WithLevel(id string) Option {
	return func(m *Mission) {
		m.level = id
	}
}

// WithNotifier receives every event, in commit order.
func WithNotifier(n Notifier) Option {
	return func(m *Mission) {
		m.notify = n
	}
}

// WithID fixes the mission id instead of generating one.
func WithID(id string) Option {
	return func(m *Mission) {
		m.id = id
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
