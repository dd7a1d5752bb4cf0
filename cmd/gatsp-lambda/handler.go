// Command gatsp-lambda serves the solver behind an AWS Lambda function URL.
//
// Build with -tags lambda for the Lambda runtime. Without the tag the
// binary reads one request body from stdin and prints the response, which
// is handy for local checks.
//
// Request body:
//
//	{"threads":2,"mutationRate":50,"generations":150,"population":5000,
//	 "pool":2500,"seed":7,"polish":true,"cities":[{"name":"A","x":83,"y":99}, ...]}
//
// Every field except cities is optional. The initial population is random.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/katalvlaran/gatsp/city"
	"github.com/katalvlaran/gatsp/dataset"
	"github.com/katalvlaran/gatsp/ga"
)

// Request caps keep one invocation inside the Lambda time limit.
const (
	maxPopulation  = 50000
	maxGenerations = 1000
	maxThreads     = 64
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveRequest struct {
	Threads      int   `json:"threads"`
	MutationRate *int  `json:"mutationRate"`
	Generations  *int  `json:"generations"`
	Population   int   `json:"population"`
	Pool         int   `json:"pool"`
	Tournament   int   `json:"tournament"`
	Seed         int64 `json:"seed"`
	Polish       bool  `json:"polish"`
}

type solveResult struct {
	Itinerary   string  `json:"itinerary"`
	Distance    float64 `json:"distance"`
	FoundAt     int     `json:"foundAt"`
	Generations int     `json:"generations"`
	PolishMoves int     `json:"polishMoves"`
	TimeMs      int64   `json:"timeMs"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req solveRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(http.StatusBadRequest, "invalid JSON: "+err.Error())
	}
	table, err := dataset.ReadCitiesJSON([]byte(body), city.Standard)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	opts, err := req.options()
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	rng := rand.New(rand.NewSource(req.Seed))
	if req.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	seeds := dataset.RandomChromosomes(table.Size(), opts.Population, rng)

	engine, err := ga.NewEngine(table, seeds, opts)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}
	start := time.Now()
	res, err := engine.Run()
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}

	respJSON, _ := json.Marshal(solveResult{
		Itinerary:   res.Itinerary,
		Distance:    res.Best.Fitness,
		FoundAt:     res.FoundAt,
		Generations: res.Generations,
		PolishMoves: res.PolishMoves,
		TimeMs:      time.Since(start).Milliseconds(),
	})
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(respJSON)}, nil
}

var errLimit = errors.New("request exceeds service limits")

// options overlays the request on ga.DefaultOptions. A population without
// a pool gets half of it as pool, rounded down to even.
func (r solveRequest) options() (ga.Options, error) {
	opts := ga.DefaultOptions()
	if r.Threads != 0 {
		opts.Workers = r.Threads
	}
	if r.MutationRate != nil {
		opts.MutationRate = *r.MutationRate
	}
	if r.Generations != nil {
		opts.Generations = *r.Generations
	}
	if r.Population != 0 {
		opts.Population = r.Population
		opts.PoolSize = r.Population / 2 &^ 1
	}
	if r.Pool != 0 {
		opts.PoolSize = r.Pool
	}
	if r.Tournament != 0 {
		opts.TournamentSize = r.Tournament
	}
	opts.Seed = r.Seed
	opts.Polish = r.Polish

	if opts.Population > maxPopulation || opts.Generations > maxGenerations || opts.Workers > maxThreads {
		return opts, errLimit
	}
	return opts, opts.Validate()
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
