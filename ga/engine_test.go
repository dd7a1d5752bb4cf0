package ga_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/stretchr/testify/require"
)

// TestEngine_ZeroGenerations seeds every permutation of the unit square and
// runs no generation: the result is the best seed, unchanged.
func TestEngine_ZeroGenerations(t *testing.T) {
	tbl := squareTable(t)
	seeds := allPerms(4)

	var records []ga.Progress
	opts := smallOptions(len(seeds), 12,
		ga.WithGenerations(0),
		ga.WithProgress(func(p ga.Progress) { records = append(records, p) }),
	)
	e, err := ga.NewEngine(tbl, seeds, opts)
	require.NoError(t, err)

	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, unitSquareBest, res.Best.Fitness)
	require.Equal(t, 0, res.Generations)
	require.Equal(t, len(seeds), res.Evaluations)
	require.Contains(t, []string{"ABCD", "ADCB"}, res.Itinerary)

	require.Len(t, records, 1)
	require.True(t, records[0].Final)
	require.True(t, records[0].Improved)
	require.Equal(t, unitSquareBest, records[0].BestFitness)

	// The seeds themselves are untouched, only sorted.
	require.Len(t, e.Population(), len(seeds))
	requirePermutations(t, e.Population(), 4)

	_, err = e.Run()
	require.ErrorIs(t, err, ga.ErrEngineUsed)
}

// TestEngine_SquareFindsOptimum: with every permutation seeded the optimum
// is present from generation 0 and elitism never loses it.
func TestEngine_SquareFindsOptimum(t *testing.T) {
	tbl := squareTable(t)
	seeds := allPerms(4)
	e, err := ga.NewEngine(tbl, seeds, smallOptions(len(seeds), 12, ga.WithGenerations(10), ga.WithWorkers(2)))
	require.NoError(t, err)

	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, unitSquareBest, res.Best.Fitness)
	require.Equal(t, 0, res.FoundAt)
	require.Equal(t, unitSquareBest, e.Population()[0].Fitness)
}

// TestEngine_StandardRun evolves a 36-city instance in parallel and checks
// the run-level invariants.
func TestEngine_StandardRun(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	tbl := standardTable(t, rng)
	const (
		population  = 400
		pool        = 200
		generations = 25
	)
	seeds := randomSeeds(rng, tbl.Size(), population)

	var (
		records []ga.Progress
		logs    bytes.Buffer
	)
	opts := smallOptions(population, pool,
		ga.WithGenerations(generations),
		ga.WithWorkers(4),
		ga.WithTournamentSize(5),
		ga.WithRateSchedule(10, 5, 60),
		ga.WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		ga.WithProgress(func(p ga.Progress) { records = append(records, p) }),
	)
	e, err := ga.NewEngine(tbl, seeds, opts)
	require.NoError(t, err)

	res, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, generations, res.Generations)
	require.Equal(t, (generations+1)*population, res.Evaluations)
	require.Len(t, records, generations+1)

	// Best-so-far never worsens; a new best is strictly better.
	for i := 1; i < len(records); i++ {
		require.LessOrEqual(t, records[i].BestFitness, records[i-1].BestFitness)
		if records[i].Improved {
			require.Less(t, records[i].BestFitness, records[i-1].BestFitness)
		}
		require.Equal(t, i, records[i].Generation)
	}
	require.True(t, records[len(records)-1].Final)
	require.Equal(t, res.Best.Fitness, records[len(records)-1].BestFitness)
	require.Equal(t, 50, records[0].MutationRate)
	require.Equal(t, 60, records[generations-1].MutationRate)

	// The GA must at least keep the seed best.
	require.LessOrEqual(t, res.Best.Fitness, records[0].Leader)

	// Reported fitness matches a fresh evaluation of the reported itinerary.
	it, err := tbl.Alphabet().Parse(res.Itinerary)
	require.NoError(t, err)
	require.Equal(t, res.Best.Fitness, ga.NewEvaluator(tbl, nil, opts).Fitness(it))

	requirePermutations(t, e.Population(), tbl.Size())
	// The cache holds at least the warmed city pairs and at most those
	// plus one origin leg per city.
	warm, full := cachePairs(tbl)
	require.GreaterOrEqual(t, e.Cache().Len(), warm)
	require.LessOrEqual(t, e.Cache().Len(), full)
	require.Contains(t, logs.String(), "generation done")
}

// cachePairs returns the pair count after warming tbl's cities and after
// adding every origin leg.
func cachePairs(tbl *city.Table) (warm, full int) {
	c := city.NewDistanceCacheFor(tbl.Points())
	warm = c.Len()
	for _, p := range tbl.Points() {
		c.Between(city.Point{}, p)
	}
	return warm, c.Len()
}

func TestNewEngine_Errors(t *testing.T) {
	tbl := squareTable(t)
	seeds := allPerms(4)

	_, err := ga.NewEngine(nil, seeds, smallOptions(len(seeds), 12))
	require.ErrorIs(t, err, ga.ErrNilTable)

	_, err = ga.NewEngine(tbl, seeds[:10], smallOptions(len(seeds), 12))
	require.ErrorIs(t, err, ga.ErrPopulationSize)

	_, err = ga.NewEngine(tbl, seeds, smallOptions(len(seeds), 12, ga.WithWorkers(0)))
	require.ErrorIs(t, err, ga.ErrWorkers)

	bad := append([][]city.City{{0, 1, 2, 2}}, seeds[1:]...)
	_, err = ga.NewEngine(tbl, bad, smallOptions(len(seeds), 12))
	require.ErrorIs(t, err, city.ErrNotPermutation)
}
