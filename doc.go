// Package gatsp is a genetic-algorithm solver for the travelling salesman
// problem over a closed set of alphabet-named cities.
//
// A tour is a permutation of the 36 standard cities
// (ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789) walked as an open path from the
// origin. The solver evolves a fixed-size population of such tours:
//
//	Evaluate  → measure every tour, sort ascending by length
//	Select    → tournament-pick a pool of distinct parents
//	Crossover → greedy distance-aware merge of parent pairs
//	Mutate    → swap two cities with a scheduled probability
//	Replace   → offspring overwrite the worst slice of the population
//
// Packages:
//
//	city/      — alphabet, coordinates, permutation checks, distance cache
//	ga/        — tours, population and the genetic operators + Engine
//	dataset/   — city tables (text/JSON) and seed chromosome loaders
//	telemetry/ — Prometheus collectors fed from ga.Progress
//	cmd/gatsp  — command-line runner writing the run report
//	cmd/gatsp-lambda — AWS Lambda function URL front end
//
// Quick start:
//
//	table, _ := dataset.LoadCities("cities.txt", city.Standard)
//	seeds, _ := dataset.LoadChromosomes("chromosome.txt", city.Standard, 50000)
//	engine, _ := ga.NewEngine(table, seeds, ga.NewOptions(ga.WithWorkers(4)))
//	res, _ := engine.Run()
//	fmt.Println(res.Itinerary, res.Best.Fitness)
//
// The result is a heuristic: there is no optimality guarantee.
package gatsp
