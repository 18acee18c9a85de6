package keccakf

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// chi is the only nonlinear step: per digit position it combines three
// lanes of the same row through the chi lookup table, which maps the packed
// base-13 digit triple a + 13b + 169c straight to the base-9 output digit.
// Each input lane is hint-decomposed once into 64 digits; every digit is
// range-bound by the width-1 chunk table and the recomposition is
// constrained against the lane. Output lanes are canonical base 9.
func (p *Permuter) chi(a [25]frontend.Variable) [25]frontend.Variable {
	var digits [25][]frontend.Variable
	for i := range a {
		digits[i] = p.laneDigits(a[i])
	}
	var out [25]frontend.Variable
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			da := digits[keccakarith.Index(x, y)]
			db := digits[keccakarith.Index((x+1)%5, y)]
			dc := digits[keccakarith.Index((x+2)%5, y)]
			idx := make([]frontend.Variable, LaneBits)
			for j := 0; j < LaneBits; j++ {
				idx[j] = p.api.Add(
					da[j],
					p.api.Mul(db[j], keccakarith.B13),
					p.api.Mul(dc[j], keccakarith.B13*keccakarith.B13),
				)
			}
			bits := p.tables.chiTable().Lookup(idx...)
			terms := make([]frontend.Variable, LaneBits)
			for j := range bits {
				terms[j] = p.api.Mul(bits[j], pow9[j])
			}
			out[keccakarith.Index(x, y)] = sum(p.api, terms)
		}
	}
	return out
}

// laneDigits decomposes a base-13 lane into its 64 digits, each proven to
// stay below 13, and ties the decomposition back to the lane.
func (p *Permuter) laneDigits(lane frontend.Variable) []frontend.Variable {
	hinted, err := p.api.Compiler().NewHint(digitsHint, LaneBits, keccakarith.B13, lane)
	if err != nil {
		panic(err)
	}
	ds := p.tables.chunkRangeTable(1).Lookup(hinted...)
	terms := make([]frontend.Variable, LaneBits)
	for j := range ds {
		terms[j] = p.api.Mul(ds[j], pow13[j])
	}
	p.api.AssertIsEqual(sum(p.api, terms), lane)
	return ds
}
