package decay

import (
	"errors"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/fsi"
	"github.com/katalvlaran/charmcp/weak"
)

// ErrNilModel is returned when a Config carries no FSI model. Callers
// wanting the no-FSI limit pass an identity model explicitly rather
// than nil.
var ErrNilModel = errors.New("decay: nil FSI model")

// Channel identifies one physical final state.
type Channel int

const (
	PiPi Channel = iota // π⁺π⁻
	KK                  // K⁺K⁻
)

func (c Channel) String() string {
	switch c {
	case PiPi:
		return "pipi"
	case KK:
		return "kk"
	default:
		return "unknown"
	}
}

// Config is the full input of one evaluation: the short-distance
// constants and the FSI model dressing both flavors.
type Config struct {
	Constants weak.Constants
	Model     fsi.Model
}

// ChannelResult holds everything Evaluate computes for one channel.
type ChannelResult struct {
	Weak        amplitude.Amplitude // bare D⁰ channel amplitude
	WeakBar     amplitude.Amplitude // bare D̄⁰ channel amplitude
	Physical    amplitude.Amplitude // FSI-dressed D⁰ channel amplitude
	PhysicalBar amplitude.Amplitude // FSI-dressed D̄⁰ channel amplitude
	ACP         float64             // direct CP asymmetry of the dressed pair
}

// Result bundles both channels of one evaluation.
type Result struct {
	PiPi ChannelResult
	KK   ChannelResult
}

// Channel returns the result for the requested channel.
func (r Result) Channel(c Channel) ChannelResult {
	if c == KK {
		return r.KK
	}
	return r.PiPi
}
