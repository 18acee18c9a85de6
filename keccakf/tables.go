package keccakf

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/std/lookup/logderivlookup"
	"github.com/rs/zerolog"

	"github.com/zkarith/keccakf1600/keccakarith"
)

// Chunk widths used by the rho decomposition and the base-9 conversion.
const (
	maxChunkWidth   = 4
	convChunkWidth  = 5
	convChunkTail   = LaneBits % convChunkWidth              // 4
	convChunks      = LaneBits/convChunkWidth + 1            // 12 five-digit chunks and one tail
	maxLaneBlocks   = 2                                      // remainder chunks per lane, one per rotation segment
	chiTableEntries = keccakarith.B13 * keccakarith.B13 * keccakarith.B13
)

// tables hands out the lookup tables of the circuit. Each table is built on
// the first query and shared read-only by every later one; a table no step
// queries is never built, as the log-derivative argument rejects committing
// a table without queries.
type tables struct {
	api frontend.API

	chunkRange [maxChunkWidth + 1]*logderivlookup.Table
	blockStep  [maxChunkWidth + 1]*logderivlookup.Table
	blockRange *logderivlookup.Table
	chi        *logderivlookup.Table
	conv       [convChunkWidth + 1]*logderivlookup.Table
}

func newTables(api frontend.API) *tables {
	return &tables{api: api}
}

func tableLogger() zerolog.Logger {
	return logger.Logger().With().Str("gadget", "keccakf").Logger()
}

func logTable(name string, rows int) {
	l := tableLogger()
	l.Debug().Str("table", name).Int("rows", rows).Msg("lookup table built")
}

// chunkRangeTable is the identity table of width-w base-13 chunks;
// membership proves a chunk stays below 13^w. Width 1 doubles as the digit
// range table.
func (t *tables) chunkRangeTable(w int) *logderivlookup.Table {
	if t.chunkRange[w] == nil {
		rows := pow(keccakarith.B13, w)
		tbl := logderivlookup.New(t.api)
		for v := 0; v < rows; v++ {
			tbl.Insert(v)
		}
		t.chunkRange[w] = tbl
		logTable("chunkRange", rows)
	}
	return t.chunkRange[w]
}

// blockStepTable holds a constant one for every valid width-w chunk. A
// lookup bounds the chunk below 13^w and contributes one counter step, so
// the per-lane block counters are witness-independent by construction: they
// count the fixed chunk shapes of the decomposition, and the aggregate
// check pins those shapes against the totals the rotation offsets dictate.
func (t *tables) blockStepTable(w int) *logderivlookup.Table {
	if t.blockStep[w] == nil {
		rows := pow(keccakarith.B13, w)
		tbl := logderivlookup.New(t.api)
		for v := 0; v < rows; v++ {
			tbl.Insert(1)
		}
		t.blockStep[w] = tbl
		logTable("blockStep", rows)
	}
	return t.blockStep[w]
}

// blockRangeTable bounds a per-lane block counter.
func (t *tables) blockRangeTable() *logderivlookup.Table {
	if t.blockRange == nil {
		tbl := logderivlookup.New(t.api)
		for v := 0; v <= maxLaneBlocks; v++ {
			tbl.Insert(v)
		}
		t.blockRange = tbl
		logTable("blockRange", maxLaneBlocks+1)
	}
	return t.blockRange
}

// chiTable maps a packed base-13 digit triple a + 13b + 169c to the base-9
// output digit parity(a) XOR (NOT parity(b) AND parity(c)).
func (t *tables) chiTable() *logderivlookup.Table {
	if t.chi == nil {
		tbl := logderivlookup.New(t.api)
		for idx := 0; idx < chiTableEntries; idx++ {
			a := uint64(idx % keccakarith.B13)
			b := uint64(idx / keccakarith.B13 % keccakarith.B13)
			c := uint64(idx / (keccakarith.B13 * keccakarith.B13))
			tbl.Insert(keccakarith.ChiBit(a, b, c))
		}
		t.chi = tbl
		logTable("chi", chiTableEntries)
	}
	return t.chi
}

// conversionTable maps a packed chunk of width base-9 digits to the packed
// base-13 chunk of its digit parities; membership also proves every digit
// of the chunk stays below 9.
func (t *tables) conversionTable(width int) *logderivlookup.Table {
	if t.conv[width] == nil {
		rows := pow(keccakarith.B9, width)
		tbl := logderivlookup.New(t.api)
		digits := make([]uint64, width)
		for v := 0; v < rows; v++ {
			rest := v
			for j := 0; j < width; j++ {
				digits[j] = keccakarith.Parity(uint64(rest % keccakarith.B9))
				rest /= keccakarith.B9
			}
			tbl.Insert(keccakarith.FromDigits(digits, keccakarith.B13))
		}
		t.conv[width] = tbl
		logTable("base9to13", rows)
	}
	return t.conv[width]
}

func pow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}
