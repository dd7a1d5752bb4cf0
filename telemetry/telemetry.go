// Package telemetry exports solver progress as Prometheus metrics.
//
// A Recorder is fed the ga.Progress records of one run (typically through
// ga.WithProgress) and keeps a small set of collectors up to date:
//
//	gatsp_generations_total         generations completed
//	gatsp_improvements_total        generations that found a new best tour
//	gatsp_best_fitness              best tour length so far
//	gatsp_leader_fitness            rank-0 length of the current generation
//	gatsp_population_fitness_mean   mean length of the current generation
//	gatsp_population_fitness_stddev its standard deviation
//	gatsp_mutation_rate_percent     mutation rate applied to the generation
//	gatsp_distance_cache_pairs      memoized distance pairs
//
// Every collector carries a constant "run" label so several runs can share
// one registry.
package telemetry

import (
	"net/http"

	"github.com/katalvlaran/gatsp/ga"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gatsp"

// Recorder updates Prometheus collectors from progress records.
// Observe is safe for concurrent use.
type Recorder struct {
	generations  prometheus.Counter
	improvements prometheus.Counter
	best         prometheus.Gauge
	leader       prometheus.Gauge
	mean         prometheus.Gauge
	stddev       prometheus.Gauge
	rate         prometheus.Gauge
	cachePairs   prometheus.Gauge
}

// NewRecorder creates the collectors for run and registers them with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer, run string) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	labels := prometheus.Labels{"run": run}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: name, Help: help, ConstLabels: labels,
		})
	}

	r := &Recorder{
		generations:  counter("generations_total", "Generations completed."),
		improvements: counter("improvements_total", "Generations that found a new best tour."),
		best:         gauge("best_fitness", "Length of the best tour found so far."),
		leader:       gauge("leader_fitness", "Length of the best tour of the current generation."),
		mean:         gauge("population_fitness_mean", "Mean tour length of the current generation."),
		stddev:       gauge("population_fitness_stddev", "Standard deviation of tour lengths of the current generation."),
		rate:         gauge("mutation_rate_percent", "Mutation rate applied to the current offspring."),
		cachePairs:   gauge("distance_cache_pairs", "Distance pairs memoized by the cache."),
	}
	for _, c := range []prometheus.Collector{
		r.generations, r.improvements, r.best, r.leader, r.mean, r.stddev, r.rate, r.cachePairs,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe records p. The final record of a run updates the gauges but does
// not count as a generation.
func (r *Recorder) Observe(p ga.Progress) {
	if !p.Final {
		r.generations.Inc()
	}
	if p.Improved {
		r.improvements.Inc()
	}
	r.best.Set(p.BestFitness)
	r.leader.Set(p.Leader)
	r.mean.Set(p.Mean)
	r.stddev.Set(p.StdDev)
	r.rate.Set(float64(p.MutationRate))
	r.cachePairs.Set(float64(p.CachedPairs))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
