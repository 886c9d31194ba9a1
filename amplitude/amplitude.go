package amplitude

import "math"

// Amplitude is a complex-valued decay amplitude.
//
// It is an immutable value type: every operation returns a new value
// and no operation mutates its receiver. The zero value is the zero
// amplitude.
type Amplitude complex128

// New builds an amplitude from its Cartesian parts.
func New(re, im float64) Amplitude {
	return Amplitude(complex(re, im))
}

// FromPolar builds mag·e^{i·phase}. The magnitude is taken as given;
// validating mag ≥ 0 is the caller's concern (weak and fsi constructors
// reject negative magnitudes before reaching this point).
func FromPolar(mag, phase float64) Amplitude {
	return Amplitude(complex(mag*math.Cos(phase), mag*math.Sin(phase)))
}

// Re returns the real part.
func (a Amplitude) Re() float64 { return real(complex128(a)) }

// Im returns the imaginary part.
func (a Amplitude) Im() float64 { return imag(complex128(a)) }

// Add returns a + b.
func (a Amplitude) Add(b Amplitude) Amplitude { return a + b }

// Sub returns a − b.
func (a Amplitude) Sub(b Amplitude) Amplitude { return a - b }

// Mul returns a · b.
func (a Amplitude) Mul(b Amplitude) Amplitude { return a * b }

// Scale returns k · a for a real factor k.
func (a Amplitude) Scale(k float64) Amplitude {
	return Amplitude(complex(k*a.Re(), k*a.Im()))
}

// Rotate returns a · e^{i·phase}, i.e. the same magnitude with the
// phase shifted. Strong-phase injection is expressed through Rotate.
func (a Amplitude) Rotate(phase float64) Amplitude {
	return a.Mul(FromPolar(1, phase))
}

// Conj returns the complex conjugate.
func (a Amplitude) Conj() Amplitude {
	return Amplitude(complex(a.Re(), -a.Im()))
}

// Abs2 returns |a|² computed as re²+im², never as a squared magnitude,
// so no precision is lost for very small or very large amplitudes.
func (a Amplitude) Abs2() float64 {
	return a.Re()*a.Re() + a.Im()*a.Im()
}

// Phase returns the argument of a in (−π, π]; Phase of zero is 0.
func (a Amplitude) Phase() float64 {
	return math.Atan2(a.Im(), a.Re())
}

// IsFinite reports whether both parts are finite (no NaN, no ±Inf).
func (a Amplitude) IsFinite() bool {
	return !math.IsNaN(a.Re()) && !math.IsInf(a.Re(), 0) &&
		!math.IsNaN(a.Im()) && !math.IsInf(a.Im(), 0)
}

// PhaseDelta returns the difference p−q wrapped into (−π, π], so two
// phases compare equal modulo 2π exactly when PhaseDelta is zero.
func PhaseDelta(p, q float64) float64 {
	d := math.Mod(p-q, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
