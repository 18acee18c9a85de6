// Package keccakf arithmetizes the Keccak-f[1600] permutation over a prime
// field using packed numeral-base encodings.
//
// Instead of bit-blasting, every 64-bit lane is one field element whose
// base-13 (or base-9) digits carry the bits. Linear steps (theta, iota,
// absorption) become carry-free field additions, rotation becomes a
// chunked digit re-packing certified by range lookups and block-count
// accounting, and the nonlinear chi step is a single lookup per digit
// triple. The design follows the packed-base Keccak circuit of the
// Ethereum zkevm project.
//
// States enter in canonical base 13 (every digit a bit) and leave in base
// 13 with digits bounded by 3; decode lanes by digit parity. The companion
// package [github.com/zkarith/keccakf1600/keccakarith] is the plain
// evaluator used to precompute expected outputs.
package keccakf

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

const (
	// LaneBits is the width of one Keccak lane.
	LaneBits = keccakarith.LaneBits
	// Rounds is the number of rounds of Keccak-f[1600].
	Rounds = keccakarith.Rounds
	// NextInputLanes is the sponge rate of Keccak-256 in lanes.
	NextInputLanes = keccakarith.NextInputLanes
)

// Permuter drives one Keccak-f[1600] permutation inside a circuit. It owns
// the lookup tables, each built on its first query and shared read-only by
// every step.
type Permuter struct {
	api    frontend.API
	tables *tables
}

// NewPermuter returns a permuter bound to the given API. Call it once per
// circuit; the tables queried by the circuit are committed by gnark when it
// is compiled.
func NewPermuter(api frontend.API) *Permuter {
	return &Permuter{
		api:    api,
		tables: newTables(api),
	}
}

// Permute runs the 24-round permutation on a canonical base-13 state.
// Rounds 0..22 run theta, rho, pi, chi, iota and the base-9 to base-13
// conversion; round 23 stops after chi and hands over to mixing, which
// absorbs the next input block when the mixing flag is set and applies the
// final round constant. The flag is a witness value: both mixing paths are
// always constrained, the flag only selects between them.
func (p *Permuter) Permute(in [25]frontend.Variable, mixing frontend.Variable, next [NextInputLanes]frontend.Variable) [25]frontend.Variable {
	state := in
	for round := 0; round < Rounds; round++ {
		state = p.theta(state)
		rotated, counts := p.rho(state)
		p.assertBlockCounts(counts)
		state = pi(rotated)
		state = p.chi(state)
		if round == Rounds-1 {
			break
		}
		state = p.iota(state, round)
		state = p.convertBase13(state, 1)
	}
	return p.mixing(state, mixing, next)
}

// AssertOutState binds the computed output to an externally witnessed
// expected state, lane by lane. Any mismatch makes the circuit
// unsatisfiable.
func (p *Permuter) AssertOutState(got, want [25]frontend.Variable) {
	assertStatesEqual(p.api, got, want)
}
