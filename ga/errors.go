package ga

import "errors"

// Configuration sentinels. Options.Validate and NewEngine return them
// (possibly wrapped with the offending value); match with errors.Is.
var (
	// ErrWorkers indicates a worker (thread) count below 1.
	ErrWorkers = errors.New("ga: worker count must be >= 1")

	// ErrPopulationSize indicates a population below 2 individuals, or a seed
	// set whose size differs from Options.Population.
	ErrPopulationSize = errors.New("ga: invalid population size")

	// ErrPoolSize indicates a parent/offspring pool that is odd, below 2 or
	// larger than the population.
	ErrPoolSize = errors.New("ga: invalid pool size")

	// ErrTournamentSize indicates a tournament size below 1.
	ErrTournamentSize = errors.New("ga: tournament size must be >= 1")

	// ErrMutationRate indicates a mutation percentage outside [0..100].
	ErrMutationRate = errors.New("ga: mutation rate must be within [0,100]")

	// ErrGenerations indicates a negative generation count.
	ErrGenerations = errors.New("ga: generation count must be >= 0")

	// ErrRateSchedule indicates an invalid mutation-rate schedule.
	ErrRateSchedule = errors.New("ga: invalid mutation rate schedule")

	// ErrPolishMoves indicates a negative 2-opt move cap.
	ErrPolishMoves = errors.New("ga: polish move cap must be >= 0")

	// ErrNilTable indicates a missing coordinate table.
	ErrNilTable = errors.New("ga: coordinate table is nil")
)

// ErrNoUnvisitedCity is an invariant violation: crossover needed a random
// repair but every city was already placed. It can only happen when the
// permutation invariant was broken upstream, so Run aborts on it.
var ErrNoUnvisitedCity = errors.New("ga: no unvisited city left for repair")

// ErrEngineUsed is returned by a second call to Engine.Run.
var ErrEngineUsed = errors.New("ga: engine already ran")
