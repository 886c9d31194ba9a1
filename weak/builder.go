package weak

import (
	"math"

	"github.com/katalvlaran/charmcp/ckm"
)

// Build computes the bare isospin amplitudes for both final states and
// both flavors from the full short-distance input set.
//
// Steps (per flavor):
//  1. Vector-pole-corrected D→P form factors:
//     F(0) / (1 − m²_P/m²_{D*}).
//  2. Chiral scalar-density corrections F^S_P from L5 and 2L8+L5.
//  3. Penguin enhancement factors δ6_P multiplying C6.
//  4. Isospin combination:
//     t0_ππ ∝ λ_d(2C1−C2) − 3λ_b(C4−C6·δ6_π),
//     t2_ππ ∝ λ_d(C1+C2),
//     t1_KK ∝ λ_s·C1 − λ_b(C4−C6·δ6_K),  t0_KK = −t1_KK.
//
// The D̄⁰ member of the Pair uses the conjugated CKM couplings with
// every strong-dynamics factor untouched.
func Build(c Constants) (Pair, error) {
	if err := c.validate(); err != nil {
		return Pair{}, err
	}
	return Pair{
		D:    buildFlavor(c, c.CKM),
		Dbar: buildFlavor(c, c.CKM.Conjugate()),
	}, nil
}

// buildFlavor evaluates one flavor; the only flavor dependence enters
// through the couplings argument.
func buildFlavor(c Constants, k ckm.Couplings) Amplitudes {
	fpi := c.FK / fkOverFpi

	// 1) Pole-corrected form factors.
	corrFDPi := c.FDPi0 / (1 - c.MPi*c.MPi/(c.MDStar*c.MDStar))
	corrFDK := c.FDK0 / (1 - c.MK*c.MK/(c.MDsStar*c.MDsStar))

	// 2) Chiral corrections to the scalar densities.
	fpiS := 1 + 16*c.TwoL8PlusL5*c.MPi*c.MPi/(fpi*fpi) + 8*c.L5*c.MPi*c.MPi/(fpi*fpi)
	fkS := 1 + 16*c.TwoL8PlusL5*c.MK*c.MK/(c.FK*c.FK) + 8*c.L5*c.MK*c.MK/(c.FK*c.FK)

	// 3) Penguin enhancement terms δ6.
	termPi := (c.FD * c.MD0 * c.MD0) / (fpi * (c.MD0*c.MD0 - c.MPi*c.MPi)) *
		(c.MC - c.MLight) / (c.MC + c.MLight) * fpiS / corrFDPi
	delta6Pi := (2 / (c.MC - c.MLight)) * (c.MPi * c.MPi / (2 * c.MLight)) * (1 + termPi)

	termK := (c.FD * c.MD0 * c.MD0) / (c.FK * (c.MD0*c.MD0 - c.MK*c.MK)) *
		(c.MC - c.MS) / (c.MC + c.MLight) * fkS / corrFDK
	delta6K := (2 / (c.MC - c.MS)) * (c.MK * c.MK / (c.MS + c.MLight)) * (1 + termK)

	// 4) Isospin combination.
	termPiPiI0 := k.LambdaD.Scale(2*c.C1 - c.C2).
		Sub(k.LambdaB.Scale(3 * (c.C4 - c.C6*delta6Pi)))
	termPiPiI2 := k.LambdaD.Scale(c.C1 + c.C2)
	termKKI0 := k.LambdaS.Scale(c.C1).
		Sub(k.LambdaB.Scale(c.C4 - c.C6*delta6K))

	constPi0 := -(c.GF / math.Sqrt2) * math.Sqrt(2.0/3.0)
	constPi2 := -(c.GF / math.Sqrt(6))
	commonPi := fpi * (c.MD0*c.MD0 - c.MPi*c.MPi) * corrFDPi

	constK0 := c.GF / math.Sqrt2
	commonK := c.FK * (c.MD0*c.MD0 - c.MK*c.MK) * corrFDK

	t1KK := termKKI0.Scale(constK0 * commonK)

	return Amplitudes{
		PiPiI0: termPiPiI0.Scale(constPi0 * commonPi),
		PiPiI2: termPiPiI2.Scale(constPi2 * 2 * commonPi),
		KKI0:   t1KK.Scale(-1),
		KKI1:   t1KK,
	}
}

// BuildTopologies computes the bare isospin amplitudes from the reduced
// tree/penguin parameterization. The tree coupling feeds both isospin
// amplitudes of its channel, the penguin (ΔI=1/2) feeds only the I=0
// part:
//
//	t0_ππ = λ_d·T_ππ + λ_b·P_ππ    t2_ππ = λ_d·T_ππ
//	t1_KK = λ_s·T_KK + λ_b·P_KK    t0_KK = −t1_KK
//
// where T and P carry their strong phases.
func BuildTopologies(t Topologies) (Pair, error) {
	if err := t.validate(); err != nil {
		return Pair{}, err
	}
	return Pair{
		D:    buildTopologyFlavor(t, t.CKM),
		Dbar: buildTopologyFlavor(t, t.CKM.Conjugate()),
	}, nil
}

func buildTopologyFlavor(t Topologies, k ckm.Couplings) Amplitudes {
	treePi := t.PiPi.Tree.amplitude()
	pengPi := t.PiPi.Penguin.amplitude()
	treeK := t.KK.Tree.amplitude()
	pengK := t.KK.Penguin.amplitude()

	t1KK := k.LambdaS.Mul(treeK).Add(k.LambdaB.Mul(pengK))

	return Amplitudes{
		PiPiI0: k.LambdaD.Mul(treePi).Add(k.LambdaB.Mul(pengPi)),
		PiPiI2: k.LambdaD.Mul(treePi),
		KKI0:   t1KK.Scale(-1),
		KKI1:   t1KK,
	}
}
