package ga

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gatsp/city"
	"gonum.org/v1/gonum/stat"
)

// Progress is the per-generation record handed to Options.OnProgress.
type Progress struct {
	// Generation is the generation index; after the last generation a
	// final record with Generation == Options.Generations and Final set
	// is emitted.
	Generation int

	// BestFitness and BestItinerary describe the best tour found so far.
	BestFitness   float64
	BestItinerary string

	// Improved is set when this generation found a new best tour.
	Improved bool

	// Leader is the rank-0 fitness of this generation; Mean and StdDev
	// summarize the whole evaluated population.
	Leader float64
	Mean   float64
	StdDev float64

	// MutationRate is the percentage applied to this generation's offspring.
	MutationRate int

	// CachedPairs is the number of distance pairs memoized so far.
	CachedPairs int

	Final bool
}

// Result summarizes a finished run.
type Result struct {
	Best        Tour
	Itinerary   string
	FoundAt     int // generation of the last improvement
	Generations int
	Evaluations int

	// PolishMoves is the number of 2-opt moves applied to Best when
	// Options.Polish is set.
	PolishMoves int
}

// Engine evolves a Population for a fixed number of generations.
// An Engine is single-use: Run may be called once.
type Engine struct {
	opts     Options
	table    *city.Table
	pop      *Population
	parents  []Tour
	children []Tour

	eval     *Evaluator
	selector *Selector
	recomb   *Recombiner
	mutator  *Mutator
	schedule RateSchedule

	log     *slog.Logger
	fitness []float64 // scratch for population statistics
	ran     bool
}

// NewEngine validates opts and seeds and wires every operator around one
// eagerly built distance cache.
//
// Errors: any Options.Validate sentinel; ErrNilTable; ErrPopulationSize
// when len(seeds) != opts.Population; wrapped city sentinels for seeds
// that are not permutations of the table's cities.
func NewEngine(table *city.Table, seeds [][]city.City, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrNilTable
	}
	if len(seeds) != opts.Population {
		return nil, fmt.Errorf("%w: %d seeds, want %d", ErrPopulationSize, len(seeds), opts.Population)
	}

	pop, err := NewPopulation(seeds, table.Size(), opts.Workers)
	if err != nil {
		return nil, err
	}

	var (
		base  = rngFromSeed(opts.Seed)
		cache = city.NewDistanceCacheFor(table.Points())
		n     = table.Size()
	)
	return &Engine{
		opts:     opts,
		table:    table,
		pop:      pop,
		parents:  MakeTours(opts.PoolSize, n),
		children: MakeTours(opts.PoolSize, n),
		eval:     NewEvaluator(table, cache, opts),
		selector: NewSelector(opts.TournamentSize, opts.Workers, base),
		recomb:   NewRecombiner(table, cache, opts.Workers, base),
		mutator:  NewMutator(opts.Workers, base),
		schedule: opts.schedule(),
		log:      opts.logger(),
		fitness:  make([]float64, opts.Population),
	}, nil
}

// Population returns the current generation (sorted after Run).
func (e *Engine) Population() []Tour { return e.pop.Tours() }

// Cache returns the distance cache shared by the evaluator and recombiner.
func (e *Engine) Cache() *city.DistanceCache { return e.eval.Cache() }

// Run executes Generations generations of
// Evaluate → Select → Crossover → Mutate → Replace, then evaluates the last
// population once more so offspring of the final generation (or, for zero
// generations, the seeds) are measured. It never stops early. With
// Options.Polish the best tour then goes through Evaluator.TwoOpt; the
// population itself is left as evolved.
//
// Errors: ErrNoUnvisitedCity (fatal invariant violation) and pool shape
// errors, wrapped with the generation index.
//
// Complexity: O(G·(P·n/workers + P log P)).
func (e *Engine) Run() (Result, error) {
	if e.ran {
		return Result{}, ErrEngineUsed
	}
	e.ran = true

	var (
		res  Result
		best = Tour{Fitness: Unevaluated}
		gen  int
		rate int
	)
	for gen = 0; gen < e.opts.Generations; gen++ {
		tours := e.pop.Tours()
		e.eval.Evaluate(tours)
		res.Evaluations += len(tours)

		rate = e.schedule.RateAt(gen)
		leader := tours[0].Fitness
		improved := e.track(&best, tours[0])
		if improved {
			res.FoundAt = gen
		}
		e.report(gen, rate, best, improved, false)

		if err := e.selector.Select(tours, e.parents); err != nil {
			return res, fmt.Errorf("generation %d: select: %w", gen, err)
		}
		if err := e.recomb.Crossover(e.parents, e.children); err != nil {
			return res, fmt.Errorf("generation %d: crossover: %w", gen, err)
		}
		swaps := e.mutator.Mutate(e.children, rate)
		if err := e.pop.Replace(e.children); err != nil {
			return res, fmt.Errorf("generation %d: replace: %w", gen, err)
		}
		res.Generations++

		e.log.Debug("generation done",
			slog.Int("generation", gen),
			slog.Float64("best", best.Fitness),
			slog.Float64("leader", leader),
			slog.Int("rate", rate),
			slog.Int("swaps", swaps),
		)
	}

	tours := e.pop.Tours()
	e.eval.Evaluate(tours)
	res.Evaluations += len(tours)
	improved := e.track(&best, tours[0])
	if improved {
		res.FoundAt = gen
	}
	if e.opts.Polish {
		res.PolishMoves = e.eval.TwoOpt(best.Itinerary, e.opts.PolishMaxMoves)
		if res.PolishMoves > 0 {
			best.Fitness = e.eval.Fitness(best.Itinerary)
			improved = true
			res.FoundAt = gen
			e.log.Debug("polished", slog.Int("moves", res.PolishMoves), slog.Float64("best", best.Fitness))
		}
	}
	e.report(gen, e.schedule.RateAt(gen), best, improved, true)

	res.Best = best
	res.Itinerary = e.table.Alphabet().Format(best.Itinerary)
	return res, nil
}

// track replaces *best with a copy of leader on strict improvement.
func (e *Engine) track(best *Tour, leader Tour) bool {
	if best.Evaluated() && !leader.Less(*best) {
		return false
	}
	*best = leader.Clone()
	return true
}

func (e *Engine) report(gen, rate int, best Tour, improved, final bool) {
	if e.opts.OnProgress == nil {
		return
	}
	tours := e.pop.Tours()
	for i := range tours {
		e.fitness[i] = tours[i].Fitness
	}
	mean, std := stat.MeanStdDev(e.fitness, nil)

	e.opts.OnProgress(Progress{
		Generation:    gen,
		BestFitness:   best.Fitness,
		BestItinerary: e.table.Alphabet().Format(best.Itinerary),
		Improved:      improved,
		Leader:        tours[0].Fitness,
		Mean:          mean,
		StdDev:        std,
		MutationRate:  rate,
		CachedPairs:   e.eval.Cache().Len(),
		Final:         final,
	})
}
