package keccakarith

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, base := range []uint64{B2, B9, B13} {
		for i := 0; i < 10; i++ {
			w := rng.Uint64()
			require.Equal(t, w, FromBase(ToBase(w, base), base), "base %d", base)
		}
	}
}

func TestDigitsPacking(t *testing.T) {
	v := FromDigits([]uint64{3, 0, 12, 7}, B13)
	require.Equal(t, []uint64{3, 0, 12, 7}, Digits(v, B13, 4))
}

func TestRotateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			r := RotationOffsets[x][y]
			for i := 0; i < 4; i++ {
				w := rng.Uint64()
				v := ToBase(w, B13)
				rot := RotateBase13(v, r)
				require.Equal(t, bits.RotateLeft64(w, r), FromBase(rot, B13), "offset %d", r)
				back := RotateBase13(rot, (LaneBits-r)%LaneBits)
				require.Equal(t, 0, v.Cmp(back), "offset %d does not round-trip", r)
			}
		}
	}
}

// The 65th digit produced by theta must fold onto the rotated position of
// bit zero.
func TestRotateFoldsWrappedDigit(t *testing.T) {
	v := FromDigits(append(make([]uint64, LaneBits), 1), B13) // only digit 64 set
	for _, r := range []int{0, 1, 44} {
		rot := RotateBase13(v, r)
		require.Equal(t, uint64(1)<<r, FromBase(rot, B13))
	}
}
