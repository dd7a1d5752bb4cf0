package main

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/gatsp/ga"
)

// reporter writes the plain-text run report. The first write error is
// kept in err and later writes are skipped.
type reporter struct {
	w   io.Writer
	err error
}

func newReporter(w io.Writer) *reporter {
	return &reporter{w: w}
}

func (r *reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reporter) header(threads, rate int) {
	r.printf("# threads = %d\n", threads)
	r.printf("current rate %d\n", rate)
}

// observe logs every generation that found a shorter tour.
func (r *reporter) observe(p ga.Progress) {
	if !p.Improved || p.Final {
		return
	}
	r.printf("generation: %d shortest distance = %.6g\t itinerary = %s\n",
		p.Generation, p.BestFitness, p.BestItinerary)
}

func (r *reporter) footer(res ga.Result, elapsed time.Duration) {
	r.printf(" shortest distance = %.6g\t itinerary = %s\n", res.Best.Fitness, res.Itinerary)
	r.printf("elapsed time = %d ms.\n\n\n", elapsed.Milliseconds())
}
