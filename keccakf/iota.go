package keccakf

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// iota adds the round constant, canonically base-9 encoded, to lane (0, 0)
// of the post-chi state. Fixed-constant addition, no new witness. Applied
// on rounds 0..22 only; round 23's constant is added by mixing in base 13.
func (p *Permuter) iota(a [25]frontend.Variable, round int) [25]frontend.Variable {
	out := a
	out[0] = addFixed(p.api, a[0], keccakarith.ToBase(keccakarith.RoundConstants[round], keccakarith.B9))
	return out
}
