package acp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/charmcp/amplitude"
)

// ErrDegenerateAmplitude is returned when the total rate |A|² + |Ā|²
// vanishes or is not finite, so the asymmetry is undefined.
var ErrDegenerateAmplitude = errors.New("acp: degenerate amplitude pair")

// Asymmetry returns (|a|² − |abar|²) / (|a|² + |abar|²).
//
// Swapping the arguments flips the sign exactly. The result is not
// clamped to [−1, 1]: a magnitude above unity signals inconsistent
// inputs and should surface, not be hidden.
func Asymmetry(a, abar amplitude.Amplitude) (float64, error) {
	ra := a.Abs2()
	rb := abar.Abs2()

	total := ra + rb
	if total == 0 {
		return 0, fmt.Errorf("%w: both rates vanish", ErrDegenerateAmplitude)
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: total rate %g is not finite", ErrDegenerateAmplitude, total)
	}

	return (ra - rb) / total, nil
}
