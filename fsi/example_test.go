package fsi_test

import (
	"fmt"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/fsi"
	"github.com/katalvlaran/charmcp/weak"
)

// ExampleNewRescatterModel demonstrates the no-FSI limit: identity
// parameters leave the bare amplitudes untouched.
func ExampleNewRescatterModel() {
	model, _ := fsi.NewRescatterModel(fsi.IdentityRescatterParams())

	bare := weak.Amplitudes{
		PiPiI0: amplitude.New(1.0, 0),
		KKI0:   amplitude.New(-0.5, 0),
	}
	dressed, _ := model.Apply(bare)
	fmt.Println(dressed == bare)
	// Output:
	// true
}

// ExampleNewRescatterModel_mixing dresses a pure-ππ bare amplitude and
// shows the induced cross-channel leakage into KK.
func ExampleNewRescatterModel_mixing() {
	piPi, _ := fsi.MixingFromModuli(0.6, 0.8, 0, 0)
	kk, _ := fsi.MixingFromModuli(0.6, 0.8, 0, 0)
	model, _ := fsi.NewRescatterModel(fsi.RescatterParams{
		PiPi: piPi, KK: kk, OmegaI2: 1, OmegaI1: 1,
	})

	bare := weak.Amplitudes{PiPiI0: amplitude.New(1, 0)}
	dressed, _ := model.Apply(bare)
	fmt.Printf("ππ: %.2f, KK: %.2f\n", dressed.PiPiI0.Re(), dressed.KKI0.Re())
	// Output:
	// ππ: 0.60, KK: 0.80
}

// ExampleNewTriangleModel builds a one-state triangle model and shows
// the strong phase the open K K̄ loop induces on the ππ amplitude.
func ExampleNewTriangleModel() {
	p := fsi.DefaultTriangleParams()
	p.States = []fsi.IntermediateState{{
		Label:        "KKbar",
		M1:           496,
		M2:           496,
		Source:       fsi.KKI0,
		Target:       fsi.PiPiI0,
		Production:   fsi.Coupling{Magnitude: 1},
		Rescattering: fsi.Coupling{Magnitude: 1},
	}}
	model, _ := fsi.NewTriangleModel(p)

	bare := weak.Amplitudes{PiPiI0: amplitude.New(1, 0), KKI0: amplitude.New(1, 0)}
	dressed, _ := model.Apply(bare)
	fmt.Println(dressed.PiPiI0.Phase() != 0)
	// Output:
	// true
}
