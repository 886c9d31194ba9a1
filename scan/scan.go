package scan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/charmcp/decay"
	"github.com/katalvlaran/charmcp/fsi"
	"github.com/katalvlaran/charmcp/weak"
)

// ErrNoOutcomes is returned by Summarize when no successful outcome is
// available for the requested channel.
var ErrNoOutcomes = errors.New("scan: no successful outcomes")

// ErrNoCases is returned by Run when the case list is empty.
var ErrNoCases = errors.New("scan: no cases")

// Case is one labelled model variant of the scan.
type Case struct {
	Label string
	Model fsi.Model
}

// Outcome pairs a case label with its evaluation result. Err records a
// per-case failure; the other fields are zero when Err is non-nil.
type Outcome struct {
	Label  string
	Result decay.Result
	Err    error
}

// Options tunes scan execution.
type Options struct {
	// Workers bounds the number of cases evaluated concurrently;
	// non-positive values fall back to DefaultOptions.
	Workers int
}

// DefaultOptions runs one worker per available CPU.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Run evaluates every case against the shared constants and returns one
// Outcome per case, in input order. The bare flavor pair is built once;
// each worker only applies its case's model and combines channels.
//
// A failing case is recorded in its Outcome and does not abort the
// scan; only context cancellation or invalid constants end it early.
func Run(ctx context.Context, consts weak.Constants, cases []Case, opts Options) ([]Outcome, error) {
	if len(cases) == 0 {
		return nil, ErrNoCases
	}
	if opts.Workers <= 0 {
		opts = DefaultOptions()
	}

	pair, err := weak.Build(consts)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := decay.EvaluatePair(pair, c.Model)
			outcomes[i] = Outcome{Label: c.Label, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// Summary condenses the asymmetry distribution of one channel across a
// scan's successful outcomes.
type Summary struct {
	Count                         int
	Mean, Median, Min, Max, Sigma float64
}

// Summarize extracts the channel's asymmetries from the successful
// outcomes and computes their distribution summary.
func Summarize(outcomes []Outcome, channel decay.Channel) (Summary, error) {
	var values stats.Float64Data
	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		values = append(values, o.Result.Channel(channel).ACP)
	}
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("%w: channel %s", ErrNoOutcomes, channel)
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, fmt.Errorf("scan: mean: %w", err)
	}
	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, fmt.Errorf("scan: median: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, fmt.Errorf("scan: min: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, fmt.Errorf("scan: max: %w", err)
	}
	sigma, err := stats.StandardDeviation(values)
	if err != nil {
		return Summary{}, fmt.Errorf("scan: stddev: %w", err)
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
		Sigma:  sigma,
	}, nil
}

// StrongPhaseGrid builds n cases sweeping the unconstrained ππ I=2
// strong phase uniformly over [0, 2π), keeping every other parameter of
// base fixed. This is the standard way to turn the unknown exotic phase
// into an uncertainty band on the asymmetries.
func StrongPhaseGrid(base fsi.RescatterParams, n int) ([]Case, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size %d", ErrNoCases, n)
	}

	cases := make([]Case, 0, n)
	for i := 0; i < n; i++ {
		p := base
		p.DeltaI2 = 2 * math.Pi * float64(i) / float64(n)
		model, err := fsi.NewRescatterModel(p)
		if err != nil {
			return nil, fmt.Errorf("grid point %d: %w", i, err)
		}
		cases = append(cases, Case{
			Label: fmt.Sprintf("deltaI2=%.4f", p.DeltaI2),
			Model: model,
		})
	}
	return cases, nil
}
