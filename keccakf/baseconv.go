package keccakf

import (
	"github.com/consensys/gnark/frontend"
)

// convertBase13 translates a base-9 state back to canonical base 13, gated
// by an activation flag. Each lane is hint-decomposed into twelve chunks of
// five base-9 digits plus a four-digit tail; one conversion-table lookup
// per chunk both bounds the chunk and yields its parity-normalized base-13
// packing. The flag is boolean-constrained; when unset the lane passes
// through unchanged.
func (p *Permuter) convertBase13(a [25]frontend.Variable, flag frontend.Variable) [25]frontend.Variable {
	p.api.AssertIsBoolean(flag)
	var out [25]frontend.Variable
	for i := range a {
		out[i] = p.api.Select(flag, p.convertLane(a[i]), a[i])
	}
	return out
}

func (p *Permuter) convertLane(lane frontend.Variable) frontend.Variable {
	hinted, err := p.api.Compiler().NewHint(convChunkHint, convChunks, lane)
	if err != nil {
		panic(err)
	}
	recomp := make([]frontend.Variable, convChunks)
	conv := make([]frontend.Variable, convChunks)
	for j := 0; j < convChunks; j++ {
		tbl := p.tables.conversionTable(convChunkWidth)
		if j == convChunks-1 {
			tbl = p.tables.conversionTable(convChunkTail)
		}
		converted := tbl.Lookup(hinted[j])[0]
		recomp[j] = p.api.Mul(hinted[j], pow9[j*convChunkWidth])
		conv[j] = p.api.Mul(converted, pow13[j*convChunkWidth])
	}
	p.api.AssertIsEqual(sum(p.api, recomp), lane)
	return sum(p.api, conv)
}
