package keccakf

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// pi relabels the lanes: the lane at (x, y) moves to (y, (2x+3y) mod 5).
// Pure wiring, no constraints; any indexing error here would be a silent
// correctness bug, hence the exhaustive mapping test.
func pi(a [25]frontend.Variable) [25]frontend.Variable {
	var out [25]frontend.Variable
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[keccakarith.Index(y, (2*x+3*y)%5)] = a[keccakarith.Index(x, y)]
		}
	}
	return out
}
