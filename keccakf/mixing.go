package keccakf

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// mixing is the terminal step after the last round's chi. The post-chi
// base-9 state is converted to canonical base 13, then both computation
// paths coexist and the boolean mixing flag selects per lane: with the flag
// set the next input block is absorbed into the first seventeen lanes
// (digit-wise addition of canonical lanes, the carry-free XOR), without it
// the converted state passes straight through. The final round constant is
// added in base 13 on both paths. The result is the permutation output.
func (p *Permuter) mixing(a [25]frontend.Variable, flag frontend.Variable, next [NextInputLanes]frontend.Variable) [25]frontend.Variable {
	p.api.AssertIsBoolean(flag)
	out := p.convertBase13(a, 1)
	for i := 0; i < NextInputLanes; i++ {
		out[i] = p.api.Select(flag, p.api.Add(out[i], next[i]), out[i])
	}
	out[0] = addFixed(p.api, out[0], keccakarith.ToBase(keccakarith.RoundConstants[Rounds-1], keccakarith.B13))
	return out
}
