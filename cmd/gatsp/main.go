// Command gatsp evolves the shortest open tour through the 36 standard
// cities with the genetic algorithm of package ga.
//
// Usage:
//
//	gatsp [flags] [threads [mutation-rate-%]]
//
// The positional arguments default to 1 thread and a 50% initial mutation
// rate. Every improvement is appended to the report file (-out) together
// with the final tour and the elapsed time. Exit status is 0 on success,
// 1 on a configuration, input or solver error and 2 on bad usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/dataset"
	"github.com/katalvlaran/gatsp/ga"
	"github.com/katalvlaran/gatsp/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// config is the parsed command line.
type config struct {
	threads     int
	rate        int
	citiesPath  string
	seedsPath   string
	outPath     string
	generations int
	population  int
	pool        int
	tournament  int
	seed        int64
	metricsAddr string
	logLevel    slog.Level
	logJSON     bool
	polish      bool
}

var errUsage = errors.New("usage")

func parseArgs(args []string, stderr io.Writer) (config, error) {
	def := ga.DefaultOptions()
	cfg := config{threads: def.Workers, rate: def.MutationRate}

	fs := flag.NewFlagSet("gatsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: gatsp [flags] [threads [mutation-rate-%]]")
		fs.PrintDefaults()
	}
	var level string
	fs.StringVar(&cfg.citiesPath, "cities", "cities.txt", "city table (name x y per line, or .json)")
	fs.StringVar(&cfg.seedsPath, "chromosomes", "chromosome.txt", "initial population, one itinerary per line; empty for random seeds")
	fs.StringVar(&cfg.outPath, "out", "program_output.txt", "report file, appended to")
	fs.IntVar(&cfg.generations, "generations", def.Generations, "number of generations")
	fs.IntVar(&cfg.population, "population", def.Population, "population size")
	fs.IntVar(&cfg.pool, "pool", def.PoolSize, "parents (and offspring) per generation, even")
	fs.IntVar(&cfg.tournament, "tournament", def.TournamentSize, "tournament size")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed; 0 seeds from the clock")
	fs.BoolVar(&cfg.polish, "polish", false, "run 2-opt on the best tour after the last generation")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	fs.StringVar(&level, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log as JSON")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return cfg, fmt.Errorf("%w: -log-level: %v", errUsage, err)
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return cfg, fmt.Errorf("%w: too many arguments", errUsage)
	}
	var err error
	if len(rest) > 0 {
		if cfg.threads, err = strconv.Atoi(rest[0]); err != nil {
			return cfg, fmt.Errorf("%w: threads: %v", errUsage, err)
		}
	}
	if len(rest) > 1 {
		if cfg.rate, err = strconv.Atoi(rest[1]); err != nil {
			return cfg, fmt.Errorf("%w: mutation rate: %v", errUsage, err)
		}
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	if cfg.logJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case err != nil:
		fmt.Fprintln(stderr, "gatsp:", err)
		return exitUsage
	}
	log := newLogger(stderr, cfg)

	if err := solve(cfg, stdout, log); err != nil {
		log.Error("run failed", slog.Any("err", err))
		return exitError
	}
	return exitOK
}

func solve(cfg config, stdout io.Writer, log *slog.Logger) error {
	table, err := dataset.LoadCities(cfg.citiesPath, city.Standard)
	if err != nil {
		return err
	}

	var seeds [][]city.City
	if cfg.seedsPath == "" {
		rng := rand.New(rand.NewSource(cfg.seed))
		if cfg.seed == 0 {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		seeds = dataset.RandomChromosomes(table.Size(), cfg.population, rng)
	} else if seeds, err = dataset.LoadChromosomes(cfg.seedsPath, table.Alphabet(), cfg.population); err != nil {
		return err
	}

	out, err := os.OpenFile(cfg.outPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	rep := newReporter(io.MultiWriter(out, stdout))
	onProgress := rep.observe

	if cfg.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		rec, err := telemetry.NewRecorder(reg, strconv.Itoa(cfg.threads))
		if err != nil {
			return err
		}
		stop, err := serveMetrics(cfg.metricsAddr, telemetry.Handler(reg), log)
		if err != nil {
			return err
		}
		defer stop()
		onProgress = func(p ga.Progress) {
			rep.observe(p)
			rec.Observe(p)
		}
	}

	opts := []ga.Option{
		ga.WithPopulation(cfg.population, cfg.pool),
		ga.WithGenerations(cfg.generations),
		ga.WithTournamentSize(cfg.tournament),
		ga.WithMutationRate(cfg.rate),
		ga.WithWorkers(cfg.threads),
		ga.WithSeed(cfg.seed),
		ga.WithLogger(log),
		ga.WithProgress(onProgress),
	}
	if cfg.polish {
		opts = append(opts, ga.WithPolish(0))
	}
	engine, err := ga.NewEngine(table, seeds, ga.NewOptions(opts...))
	if err != nil {
		return err
	}

	rep.header(cfg.threads, cfg.rate)
	log.Info("run started",
		slog.Int("threads", cfg.threads),
		slog.Int("rate", cfg.rate),
		slog.Int("population", cfg.population),
		slog.Int("generations", cfg.generations),
	)
	start := time.Now()
	res, err := engine.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	rep.footer(res, elapsed)

	log.Info("run finished",
		slog.Float64("best", res.Best.Fitness),
		slog.String("itinerary", res.Itinerary),
		slog.Int("found_at", res.FoundAt),
		slog.Int("polish_moves", res.PolishMoves),
		slog.Duration("elapsed", elapsed),
	)
	return rep.err
}

// serveMetrics starts an HTTP server for h on addr and returns its stop
// function.
func serveMetrics(addr string, h http.Handler, log *slog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", slog.Any("err", err))
		}
	}()
	log.Info("serving metrics", slog.String("addr", ln.Addr().String()))
	return func() { _ = srv.Close() }, nil
}
