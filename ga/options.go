package ga

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gatsp/city"
)

// Defaults for a full-size run.
const (
	DefaultPopulation     = 50000 // chromosomes
	DefaultPoolSize       = 25000 // top 50%
	DefaultGenerations    = 150
	DefaultTournamentSize = 20
	DefaultMutationRate   = 50 // percent
	DefaultRateStep       = 20
	DefaultRateInterval   = 20
	DefaultRateCeiling    = 99
	DefaultWorkers        = 1
)

// Options configures an Engine.
//
// Zero values are not defaults: start from DefaultOptions (or NewOptions)
// and override fields.
type Options struct {
	// Population is the number of tours. Must equal the number of seeds
	// passed to NewEngine.
	Population int

	// PoolSize is the number of parents selected and offspring produced per
	// generation. Even, in [2..Population].
	PoolSize int

	// Generations is the fixed number of generations; 0 only evaluates seeds.
	Generations int

	// TournamentSize is the number of contenders per tournament. Larger
	// values increase selection pressure.
	TournamentSize int

	// MutationRate is the initial per-offspring swap probability in percent.
	MutationRate int

	// RateStep is added to the mutation rate every RateInterval generations,
	// up to RateCeiling. RateStep==0 keeps the rate constant.
	RateStep     int
	RateInterval int
	RateCeiling  int

	// Workers is the parallelism of every parallel-for region (thread count).
	Workers int

	// Seed for the random streams; 0 picks a time-based seed.
	Seed int64

	// Origin is the fixed start point; when FromOrigin is set the leg
	// Origin → first city is part of the fitness.
	Origin     city.Point
	FromOrigin bool

	// Polish runs 2-opt on the best tour after the last generation.
	// PolishMaxMoves caps accepted moves; 0 runs to a local optimum.
	Polish         bool
	PolishMaxMoves int

	// Logger receives Debug records per generation. Nil discards.
	Logger *slog.Logger

	// OnProgress, when set, is called synchronously once per generation
	// and once after the final evaluation.
	OnProgress func(Progress)
}

// Option mutates Options; see NewOptions.
type Option func(*Options)

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Population:     DefaultPopulation,
		PoolSize:       DefaultPoolSize,
		Generations:    DefaultGenerations,
		TournamentSize: DefaultTournamentSize,
		MutationRate:   DefaultMutationRate,
		RateStep:       DefaultRateStep,
		RateInterval:   DefaultRateInterval,
		RateCeiling:    DefaultRateCeiling,
		Workers:        DefaultWorkers,
		Origin:         city.Point{},
		FromOrigin:     true,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPopulation sets the population and pool sizes together.
func WithPopulation(population, pool int) Option {
	return func(o *Options) {
		o.Population = population
		o.PoolSize = pool
	}
}

// WithGenerations sets the generation count.
func WithGenerations(n int) Option {
	return func(o *Options) { o.Generations = n }
}

// WithTournamentSize sets the tournament size.
func WithTournamentSize(n int) Option {
	return func(o *Options) { o.TournamentSize = n }
}

// WithMutationRate sets the initial mutation percentage.
func WithMutationRate(percent int) Option {
	return func(o *Options) { o.MutationRate = percent }
}

// WithRateSchedule sets the step, interval and ceiling of the mutation schedule.
func WithRateSchedule(step, interval, ceiling int) Option {
	return func(o *Options) {
		o.RateStep = step
		o.RateInterval = interval
		o.RateCeiling = ceiling
	}
}

// WithWorkers sets the thread count.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithOrigin enables the start leg from p.
func WithOrigin(p city.Point) Option {
	return func(o *Options) {
		o.Origin = p
		o.FromOrigin = true
	}
}

// WithoutOrigin drops the start leg; fitness is the bare open path.
func WithoutOrigin() Option {
	return func(o *Options) { o.FromOrigin = false }
}

// WithPolish enables the final 2-opt pass with at most maxMoves accepted
// moves (0 = until no move improves).
func WithPolish(maxMoves int) Option {
	return func(o *Options) {
		o.Polish = true
		o.PolishMaxMoves = maxMoves
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithProgress sets the per-generation callback.
func WithProgress(fn func(Progress)) Option {
	return func(o *Options) { o.OnProgress = fn }
}

// Validate checks Options in isolation (no seeds, no table).
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrWorkers, o.Workers)
	}
	if o.Population < 2 {
		return fmt.Errorf("%w: %d", ErrPopulationSize, o.Population)
	}
	// Pairs (i, i+1) need an even pool; elitism needs pool <= population.
	if o.PoolSize < 2 || o.PoolSize%2 != 0 || o.PoolSize > o.Population {
		return fmt.Errorf("%w: %d (population %d)", ErrPoolSize, o.PoolSize, o.Population)
	}
	if o.TournamentSize < 1 {
		return fmt.Errorf("%w: %d", ErrTournamentSize, o.TournamentSize)
	}
	if o.MutationRate < 0 || o.MutationRate > 100 {
		return fmt.Errorf("%w: %d", ErrMutationRate, o.MutationRate)
	}
	if o.Generations < 0 {
		return fmt.Errorf("%w: %d", ErrGenerations, o.Generations)
	}
	if o.RateStep < 0 || o.RateInterval < 1 || o.RateCeiling < 0 || o.RateCeiling > 100 {
		return fmt.Errorf("%w: step=%d interval=%d ceiling=%d",
			ErrRateSchedule, o.RateStep, o.RateInterval, o.RateCeiling)
	}
	if o.PolishMaxMoves < 0 {
		return fmt.Errorf("%w: %d", ErrPolishMoves, o.PolishMaxMoves)
	}
	return nil
}

// schedule extracts the mutation-rate schedule.
func (o Options) schedule() RateSchedule {
	return RateSchedule{
		Initial:  o.MutationRate,
		Step:     o.RateStep,
		Interval: o.RateInterval,
		Ceiling:  o.RateCeiling,
	}
}

// logger returns o.Logger or a handler that drops everything.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
