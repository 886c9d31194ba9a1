package amplitude_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/stretchr/testify/assert"
)

// TestAmplitude_CartesianRoundTrip verifies New, Re and Im agree.
func TestAmplitude_CartesianRoundTrip(t *testing.T) {
	a := amplitude.New(3, -4)
	assert.Equal(t, 3.0, a.Re(), "real part")
	assert.Equal(t, -4.0, a.Im(), "imaginary part")
}

// TestAmplitude_FromPolar verifies magnitude and phase of a polar build.
func TestAmplitude_FromPolar(t *testing.T) {
	a := amplitude.FromPolar(2, math.Pi/3)
	assert.InDelta(t, 4.0, a.Abs2(), 1e-15, "|2·e^{iπ/3}|² = 4")
	assert.InDelta(t, math.Pi/3, a.Phase(), 1e-15, "phase preserved")
}

// TestAmplitude_Abs2 checks re²+im² against hand values, including the
// tiny-magnitude regime where |a| then squaring would underflow.
func TestAmplitude_Abs2(t *testing.T) {
	assert.Equal(t, 25.0, amplitude.New(3, 4).Abs2(), "3²+4²")

	tiny := amplitude.New(1e-150, 1e-150)
	assert.InEpsilon(t, 2e-300, tiny.Abs2(), 1e-14, "tiny |a|² must come out of re²+im² without underflow")
}

// TestAmplitude_Ops exercises Add, Sub, Mul, Scale and Conj as pure ops.
func TestAmplitude_Ops(t *testing.T) {
	a := amplitude.New(1, 2)
	b := amplitude.New(3, -1)

	assert.Equal(t, amplitude.New(4, 1), a.Add(b), "sum")
	assert.Equal(t, amplitude.New(-2, 3), a.Sub(b), "difference")
	assert.Equal(t, amplitude.New(5, 5), a.Mul(b), "(1+2i)(3−i) = 5+5i")
	assert.Equal(t, amplitude.New(2, 4), a.Scale(2), "real scaling")
	assert.Equal(t, amplitude.New(1, -2), a.Conj(), "conjugate")

	// receiver untouched
	assert.Equal(t, amplitude.New(1, 2), a, "operations must not mutate")
}

// TestAmplitude_RotatePreservesMagnitude verifies Rotate shifts only
// the phase.
func TestAmplitude_RotatePreservesMagnitude(t *testing.T) {
	a := amplitude.New(0.3, -0.7)
	r := a.Rotate(1.234)
	assert.InDelta(t, a.Abs2(), r.Abs2(), 1e-15, "|a|² invariant under rotation")
	assert.InDelta(t, 1.234, amplitude.PhaseDelta(r.Phase(), a.Phase()), 1e-12, "phase shifted by the rotation angle")
}

// TestAmplitude_SpecialValuesPropagate verifies NaN/Inf survive the ops
// unchanged rather than being masked.
func TestAmplitude_SpecialValuesPropagate(t *testing.T) {
	nan := amplitude.New(math.NaN(), 0)
	inf := amplitude.New(math.Inf(1), 1)

	assert.True(t, math.IsNaN(nan.Add(amplitude.New(1, 1)).Re()), "NaN propagates through Add")
	assert.True(t, math.IsNaN(nan.Abs2()), "NaN propagates through Abs2")
	assert.True(t, math.IsInf(inf.Abs2(), 1), "Inf propagates through Abs2")
	assert.False(t, nan.IsFinite(), "NaN is not finite")
	assert.False(t, inf.IsFinite(), "Inf is not finite")
	assert.True(t, amplitude.New(0, 0).IsFinite(), "zero is finite")
}

// TestPhaseDelta_Wrapping checks comparison modulo 2π.
func TestPhaseDelta_Wrapping(t *testing.T) {
	assert.InDelta(t, 0, amplitude.PhaseDelta(3*math.Pi, math.Pi), 1e-12, "3π ≡ π (mod 2π)")
	assert.InDelta(t, -math.Pi/2, amplitude.PhaseDelta(0, math.Pi/2), 1e-12, "signed difference")
	assert.InDelta(t, 0, amplitude.PhaseDelta(-math.Pi, math.Pi), 1e-12, "−π ≡ π (mod 2π)")
}
