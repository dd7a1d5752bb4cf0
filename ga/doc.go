// Package ga implements a genetic-algorithm heuristic for the open-path
// Travelling Salesman Problem over a closed city alphabet.
//
// One generation of Engine.Run is the fixed pipeline
//
//	Evaluate → Select → Crossover → Mutate → Replace
//
//   - Evaluator  — open-path length of every tour (optional leg from a fixed
//     origin), then a stable ascending sort: rank 0 is the current best.
//   - Selector   — tournament selection of PoolSize parents; an individual
//     wins at most one slot per generation.
//   - Recombiner — pairs (i, i+1) of shuffled parents; offspring A is a
//     greedy distance-guided merge of both parents, offspring B is the index
//     complement (k → N-1-k) of A.
//   - Mutator    — per offspring, with probability rate/100, swap two cities.
//   - Population — double buffer; offspring overwrite the PoolSize worst
//     slots, the better part survives untouched (elitist replacement).
//
// Every stage except the sort is a parallel-for over index-disjoint chunks
// (github.com/sourcegraph/conc/pool). Each worker owns its random stream and
// scratch buffers; the only shared mutable state is the city.DistanceCache
// and the selector's claim set.
//
// Determinism: a non-zero Options.Seed makes a run with Workers==1
// reproducible. Seed==0 draws a time-based seed, and with several workers
// the order in which tournaments claim winners is scheduler-dependent.
//
// This is a heuristic: no optimality guarantee is made.
package ga
