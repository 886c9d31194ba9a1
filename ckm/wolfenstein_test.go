package ckm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/ckm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWolfenstein_CentralValues checks the λ_q combinations against the
// magnitudes they are known to take at PDG central inputs.
func TestWolfenstein_CentralValues(t *testing.T) {
	c, err := ckm.PDG().Couplings()
	require.NoError(t, err)

	// λ_d ≈ −0.22 with a ~1.4e−4 positive imaginary part.
	assert.InDelta(t, -0.22, c.LambdaD.Re(), 5e-3, "Re λ_d")
	assert.InDelta(t, 1.4e-4, c.LambdaD.Im(), 2e-5, "Im λ_d appears at O(λ⁵)")

	// λ_s ≈ +0.22, real at this expansion order.
	assert.InDelta(t, 0.22, c.LambdaS.Re(), 5e-3, "Re λ_s")
	assert.Equal(t, 0.0, c.LambdaS.Im(), "λ_s real at O(λ⁵)")

	// λ_b = A²λ⁵(ρ − iη) ≈ 6e−5 − 1.4e−4 i.
	assert.InDelta(t, 6.2e-5, c.LambdaB.Re(), 1e-5, "Re λ_b")
	assert.InDelta(t, -1.4e-4, c.LambdaB.Im(), 2e-5, "Im λ_b")
}

// TestWolfenstein_Validation rejects out-of-domain inputs.
func TestWolfenstein_Validation(t *testing.T) {
	for name, w := range map[string]ckm.Wolfenstein{
		"lambda zero":     {Lambda: 0, A: 0.8},
		"lambda one":      {Lambda: 1, A: 0.8},
		"lambda negative": {Lambda: -0.2, A: 0.8},
		"A zero":          {Lambda: 0.22, A: 0},
		"eta NaN":         {Lambda: 0.22, A: 0.8, Eta: math.NaN()},
	} {
		_, err := w.Couplings()
		assert.ErrorIs(t, err, ckm.ErrInvalidParameters, name)
	}
}

// TestCouplings_Conjugate flips every weak phase and nothing else.
func TestCouplings_Conjugate(t *testing.T) {
	c := ckm.FromLambdas(
		amplitude.New(-0.22, 1.3e-4),
		amplitude.New(0.22, 6.9e-6),
		amplitude.New(6.1e-5, -1.4e-4),
	)
	cc := c.Conjugate()

	assert.Equal(t, c.LambdaD.Conj(), cc.LambdaD)
	assert.Equal(t, c.LambdaS.Conj(), cc.LambdaS)
	assert.Equal(t, c.LambdaB.Conj(), cc.LambdaB)
	assert.Equal(t, c, cc.Conjugate(), "double conjugation is the identity")
}

// TestCouplings_IsZero distinguishes absent couplings from present ones.
func TestCouplings_IsZero(t *testing.T) {
	assert.True(t, ckm.Couplings{}.IsZero())
	assert.False(t, ckm.FromLambdas(amplitude.New(0.1, 0), 0, 0).IsZero())
}
