package keccakf

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"

	"github.com/zkarith/keccakf1600/keccakarith"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hints used in the package.
func GetHints() []solver.Hint {
	return []solver.Hint{rhoChunkHint, digitsHint, convChunkHint}
}

// rhoChunkHint decomposes a post-theta base-13 lane for rotation. Inputs
// are the rotation offset and the lane; outputs are digit 0, digit 64 and
// the chunk values of the fixed decomposition for that offset.
func rhoChunkHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 2 {
		return fmt.Errorf("expecting two inputs, got %d", len(inputs))
	}
	if !inputs[0].IsInt64() {
		return fmt.Errorf("rotation offset not an integer")
	}
	spans := rhoChunks(int(inputs[0].Int64()))
	if len(outputs) != len(spans)+2 {
		return fmt.Errorf("expecting %d outputs, got %d", len(spans)+2, len(outputs))
	}
	d := keccakarith.Digits(inputs[1], keccakarith.B13, LaneBits+1)
	outputs[0].SetUint64(d[0])
	outputs[1].SetUint64(d[LaneBits])
	for j, s := range spans {
		outputs[2+j].Set(keccakarith.FromDigits(d[s.pos:s.pos+s.width], keccakarith.B13))
	}
	return nil
}

// digitsHint decomposes a lane into single digits. Inputs are the base and
// the lane; the digit count is the output count.
func digitsHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 2 {
		return fmt.Errorf("expecting two inputs, got %d", len(inputs))
	}
	if !inputs[0].IsUint64() {
		return fmt.Errorf("base not an integer")
	}
	d := keccakarith.Digits(inputs[1], inputs[0].Uint64(), len(outputs))
	for j := range outputs {
		outputs[j].SetUint64(d[j])
	}
	return nil
}

// convChunkHint decomposes a base-9 lane into the fixed conversion chunks:
// twelve chunks of five digits and one tail chunk of four.
func convChunkHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 1 {
		return fmt.Errorf("expecting one input, got %d", len(inputs))
	}
	if len(outputs) != convChunks {
		return fmt.Errorf("expecting %d outputs, got %d", convChunks, len(outputs))
	}
	d := keccakarith.Digits(inputs[0], keccakarith.B9, LaneBits)
	for j := 0; j < convChunks; j++ {
		lo := j * convChunkWidth
		hi := lo + convChunkWidth
		if hi > LaneBits {
			hi = LaneBits
		}
		outputs[j].Set(keccakarith.FromDigits(d[lo:hi], keccakarith.B9))
	}
	return nil
}
