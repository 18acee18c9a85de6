package keccakf

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// theta mixes the column parities into every lane. The input state must be
// canonical base 13 (every digit a bit). For the lane at (x, y) the gate is
//
//	out = a[x][y] + C[x-1] + 13*C[x+1]
//
// where C[x] is the sum of column x. Digit-wise sums stay below 13, so the
// additions emulate XOR; multiplying by 13 shifts every digit up one
// position, which is the rotation by one with the wrapped bit parked in an
// extra 65th digit. Rho folds that digit back onto position zero. Pure
// linear gate, no lookups.
func (p *Permuter) theta(a [25]frontend.Variable) [25]frontend.Variable {
	var c [5]frontend.Variable
	for x := 0; x < 5; x++ {
		c[x] = p.api.Add(
			a[keccakarith.Index(x, 0)],
			a[keccakarith.Index(x, 1)],
			a[keccakarith.Index(x, 2)],
			a[keccakarith.Index(x, 3)],
			a[keccakarith.Index(x, 4)],
		)
	}
	var out [25]frontend.Variable
	for x := 0; x < 5; x++ {
		shifted := p.api.Mul(c[(x+1)%5], keccakarith.B13)
		for y := 0; y < 5; y++ {
			i := keccakarith.Index(x, y)
			out[i] = p.api.Add(a[i], c[(x+4)%5], shifted)
		}
	}
	return out
}
