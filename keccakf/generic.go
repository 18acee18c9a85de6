package keccakf

import (
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// Powers of the working bases, indexed by digit position. pow13 carries one
// extra entry for the 65th digit produced by theta.
var (
	pow13 [LaneBits + 2]*big.Int
	pow9  [LaneBits + 1]*big.Int
)

func init() {
	b13 := big.NewInt(keccakarith.B13)
	b9 := big.NewInt(keccakarith.B9)
	pow13[0] = big.NewInt(1)
	for i := 1; i < len(pow13); i++ {
		pow13[i] = new(big.Int).Mul(pow13[i-1], b13)
	}
	pow9[0] = big.NewInt(1)
	for i := 1; i < len(pow9); i++ {
		pow9[i] = new(big.Int).Mul(pow9[i-1], b9)
	}
}

// addFixed adds a statically known constant to a lane.
func addFixed(api frontend.API, lane frontend.Variable, c *big.Int) frontend.Variable {
	return api.Add(lane, c)
}

// sum folds a list of terms with a single variadic addition.
func sum(api frontend.API, terms []frontend.Variable) frontend.Variable {
	switch len(terms) {
	case 0:
		return 0
	case 1:
		return terms[0]
	}
	return api.Add(terms[0], terms[1], terms[2:]...)
}

// assertStatesEqual constrains two states lane by lane.
func assertStatesEqual(api frontend.API, a, b [25]frontend.Variable) {
	for i := range a {
		api.AssertIsEqual(a[i], b[i])
	}
}
