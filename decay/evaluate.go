package decay

import (
	"fmt"
	"math"

	"github.com/katalvlaran/charmcp/acp"
	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/fsi"
	"github.com/katalvlaran/charmcp/weak"
)

// Clebsch–Gordan weights of the isospin decomposition.
var (
	cgPiPiI0 = 1 / math.Sqrt(6)
	cgPiPiI2 = 1 / (2 * math.Sqrt(3))
)

// Evaluate runs the full pipeline: builds the bare flavor pair from
// cfg.Constants, dresses both flavors through cfg.Model, combines the
// isospin amplitudes into physical channel amplitudes and computes the
// CP asymmetry of each channel.
func Evaluate(cfg Config) (Result, error) {
	pair, err := weak.Build(cfg.Constants)
	if err != nil {
		return Result{}, err
	}
	return EvaluatePair(pair, cfg.Model)
}

// EvaluateChannel evaluates a single channel. Unlike Evaluate it does
// not require the other channel to carry a non-degenerate rate.
func EvaluateChannel(cfg Config, c Channel) (ChannelResult, error) {
	pair, err := weak.Build(cfg.Constants)
	if err != nil {
		return ChannelResult{}, err
	}
	return EvaluatePairChannel(pair, cfg.Model, c)
}

// EvaluatePairChannel is EvaluateChannel for an already-built pair.
func EvaluatePairChannel(pair weak.Pair, model fsi.Model, c Channel) (ChannelResult, error) {
	if model == nil {
		return ChannelResult{}, ErrNilModel
	}

	dressed, err := model.Apply(pair.D)
	if err != nil {
		return ChannelResult{}, fmt.Errorf("dressing D⁰: %w", err)
	}
	dressedBar, err := model.Apply(pair.Dbar)
	if err != nil {
		return ChannelResult{}, fmt.Errorf("dressing D̄⁰: %w", err)
	}
	return channelResult(c, pair.D, pair.Dbar, dressed, dressedBar)
}

// EvaluatePair dresses an already-built flavor pair. Useful when the
// bare amplitudes come from BuildTopologies or are varied directly.
func EvaluatePair(pair weak.Pair, model fsi.Model) (Result, error) {
	if model == nil {
		return Result{}, ErrNilModel
	}

	dressed, err := model.Apply(pair.D)
	if err != nil {
		return Result{}, fmt.Errorf("dressing D⁰: %w", err)
	}
	dressedBar, err := model.Apply(pair.Dbar)
	if err != nil {
		return Result{}, fmt.Errorf("dressing D̄⁰: %w", err)
	}

	piPi, err := channelResult(PiPi, pair.D, pair.Dbar, dressed, dressedBar)
	if err != nil {
		return Result{}, err
	}
	kk, err := channelResult(KK, pair.D, pair.Dbar, dressed, dressedBar)
	if err != nil {
		return Result{}, err
	}
	return Result{PiPi: piPi, KK: kk}, nil
}

func channelResult(c Channel, bare, bareBar, dressed, dressedBar weak.Amplitudes) (ChannelResult, error) {
	phys := combine(c, dressed)
	physBar := combine(c, dressedBar)

	a, err := acp.Asymmetry(phys, physBar)
	if err != nil {
		return ChannelResult{}, fmt.Errorf("channel %s: %w", c, err)
	}
	return ChannelResult{
		Weak:        combine(c, bare),
		WeakBar:     combine(c, bareBar),
		Physical:    phys,
		PhysicalBar: physBar,
		ACP:         a,
	}, nil
}

// combine projects the isospin amplitudes of one flavor onto the
// physical channel amplitude.
func combine(c Channel, a weak.Amplitudes) amplitude.Amplitude {
	if c == KK {
		return a.KKI0.Add(a.KKI1).Scale(0.5)
	}
	return a.PiPiI0.Scale(cgPiPiI0).Add(a.PiPiI2.Scale(cgPiPiI2))
}
