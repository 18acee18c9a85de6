package keccakf

import (
	"github.com/consensys/gnark/frontend"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// chunkSpan is one chunk of the fixed rho decomposition: width digits
// starting at digit position pos of the unrotated lane.
type chunkSpan struct {
	pos   int
	width int
}

// rhoChunks returns the chunk decomposition of digit positions 1..63 for a
// rotation offset. The run of digits is split at the rotation boundary
// 64-r so that no chunk straddles the wrap-around, then each segment is cut
// greedily into chunks of four. Digits 0 and 64 are handled separately as
// the special chunk.
func rhoChunks(r int) []chunkSpan {
	cut := LaneBits - r
	var spans []chunkSpan
	for _, seg := range [2][2]int{{1, cut}, {cut, LaneBits}} {
		for pos := seg[0]; pos < seg[1]; {
			w := seg[1] - pos
			if w > maxChunkWidth {
				w = maxChunkWidth
			}
			spans = append(spans, chunkSpan{pos: pos, width: w})
			pos += w
		}
	}
	return spans
}

// laneBlockCounts returns how many width-2 and width-3 chunks the fixed
// decomposition for a rotation offset contains.
func laneBlockCounts(r int) (two, three int) {
	for _, s := range rhoChunks(r) {
		switch s.width {
		case 2:
			two++
		case 3:
			three++
		}
	}
	return two, three
}

// expectedBlockCounts are the aggregate block-count totals over the whole
// state, fixed by the standard rotation offsets.
func expectedBlockCounts() (two, three int) {
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			t2, t3 := laneBlockCounts(keccakarith.RotationOffsets[x][y])
			two += t2
			three += t3
		}
	}
	return two, three
}

// blockCount is the pair of bounded per-lane overflow counters emitted by
// one lane rotation.
type blockCount struct {
	two   frontend.Variable
	three frontend.Variable
}

// rho rotates every lane left by its standard offset and re-normalizes the
// 65-digit theta output back to 64 base-13 digits. Each lane is
// hint-decomposed into the fixed chunk shape for its offset; every chunk
// passes through its width-class range table, the recomposition is
// constrained against the input lane, and the output lane is the same
// chunks re-packed at the rotated positions. Digits 0 and 64 both land on
// output position r (the special chunk). Returns the rotated state and one
// block-count pair per lane; the pairs must be handed to
// [Permuter.assertBlockCounts].
func (p *Permuter) rho(a [25]frontend.Variable) ([25]frontend.Variable, [25]blockCount) {
	var out [25]frontend.Variable
	var counts [25]blockCount
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			i := keccakarith.Index(x, y)
			out[i], counts[i] = p.rotateLane(a[i], keccakarith.RotationOffsets[x][y])
		}
	}
	return out, counts
}

func (p *Permuter) rotateLane(lane frontend.Variable, r int) (frontend.Variable, blockCount) {
	spans := rhoChunks(r)
	hinted, err := p.api.Compiler().NewHint(rhoChunkHint, len(spans)+2, r, lane)
	if err != nil {
		panic(err)
	}

	d0 := p.tables.chunkRangeTable(1).Lookup(hinted[0])[0]
	d64 := p.tables.chunkRangeTable(1).Lookup(hinted[1])[0]

	recomp := make([]frontend.Variable, 0, len(spans)+2)
	rotated := make([]frontend.Variable, 0, len(spans)+1)
	var twoTerms, threeTerms []frontend.Variable
	for j, s := range spans {
		chunk := p.tables.chunkRangeTable(s.width).Lookup(hinted[2+j])[0]
		recomp = append(recomp, p.api.Mul(chunk, pow13[s.pos]))
		rotated = append(rotated, p.api.Mul(chunk, pow13[(s.pos+r)%LaneBits]))
		switch s.width {
		case 2, 3:
			terms := p.tables.blockStepTable(s.width).Lookup(hinted[2+j])
			if s.width == 2 {
				twoTerms = append(twoTerms, terms[0])
			} else {
				threeTerms = append(threeTerms, terms[0])
			}
		}
	}
	recomp = append(recomp, d0, p.api.Mul(d64, pow13[LaneBits]))
	p.api.AssertIsEqual(sum(p.api, recomp), lane)

	// special chunk: the wrapped theta digit and digit 0 share output
	// position r
	rotated = append(rotated, p.api.Mul(p.api.Add(d0, d64), pow13[r]))

	bc := blockCount{two: sum(p.api, twoTerms), three: sum(p.api, threeTerms)}
	p.tables.blockRangeTable().Lookup(bc.two, bc.three)
	return sum(p.api, rotated), bc
}

// assertBlockCounts folds the 25 per-lane block-count pairs into one
// aggregate equality against the totals fixed by the standard rotation
// offsets. A single unaccounted chunk anywhere in the state breaks the
// aggregate.
func (p *Permuter) assertBlockCounts(counts [25]blockCount) {
	two := make([]frontend.Variable, 25)
	three := make([]frontend.Variable, 25)
	for i := range counts {
		two[i] = counts[i].two
		three[i] = counts[i].three
	}
	expTwo, expThree := expectedBlockCounts()
	p.api.AssertIsEqual(sum(p.api, two), expTwo)
	p.api.AssertIsEqual(sum(p.api, three), expThree)
}
