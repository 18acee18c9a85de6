package keccakarith

import "math/big"

var thirteen = big.NewInt(B13)

// Theta applies the column-parity mixing step to a canonical base-13
// state. For every lane it adds the column sum one to the left and, shifted
// up one digit, the column sum one to the right; digit-wise sums stay below
// 13 so the additions emulate XOR. The shift leaves the wrapped bit in an
// extra 65th digit which rho folds back.
func Theta(a State) State {
	var c [5]*big.Int
	for x := 0; x < 5; x++ {
		c[x] = new(big.Int)
		for y := 0; y < 5; y++ {
			c[x].Add(c[x], a[Index(x, y)])
		}
	}
	out := ZeroState()
	shifted := new(big.Int)
	for x := 0; x < 5; x++ {
		shifted.Mul(c[(x+1)%5], thirteen)
		for y := 0; y < 5; y++ {
			i := Index(x, y)
			out[i].Add(a[i], c[(x+4)%5])
			out[i].Add(out[i], shifted)
		}
	}
	return out
}

// Rho rotates every lane left by its standard offset, in base 13.
func Rho(a State) State {
	out := ZeroState()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			i := Index(x, y)
			out[i] = RotateBase13(a[i], RotationOffsets[x][y])
		}
	}
	return out
}

// Pi relabels the lanes: the lane at (x, y) moves to (y, (2x+3y) mod 5).
func Pi(a State) State {
	out := ZeroState()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			out[Index(y, (2*x+3*y)%5)] = new(big.Int).Set(a[Index(x, y)])
		}
	}
	return out
}

// Chi applies the nonlinear step digit-wise on a base-13 state and
// produces a canonical base-9 state.
func Chi(a State) State {
	var digits [25][]uint64
	for i := range a {
		digits[i] = Digits(a[i], B13, LaneBits)
	}
	out := ZeroState()
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			da := digits[Index(x, y)]
			db := digits[Index((x+1)%5, y)]
			dc := digits[Index((x+2)%5, y)]
			bits := make([]uint64, LaneBits)
			for j := 0; j < LaneBits; j++ {
				bits[j] = ChiBit(da[j], db[j], dc[j])
			}
			out[Index(x, y)] = FromDigits(bits, B9)
		}
	}
	return out
}

// IotaB9 adds round constant r, base-9 encoded, to lane (0, 0).
func IotaB9(a State, round int) State {
	out := copyState(a)
	out[0] = new(big.Int).Add(a[0], ToBase(RoundConstants[round], B9))
	return out
}

// ToBase13 converts a base-9 state into canonical base 13, digit parities
// carried over.
func ToBase13(a State) State {
	out := ZeroState()
	for i := range a {
		d := Digits(a[i], B9, LaneBits)
		for j := range d {
			d[j] = Parity(d[j])
		}
		out[i] = FromDigits(d, B13)
	}
	return out
}

// Absorb adds the next input block into the first NextInputLanes lanes of
// a canonical base-13 state. Digit sums stay below 13, so the addition is
// the XOR of the sponge absorption.
func Absorb(a State, next [NextInputLanes]*big.Int) State {
	out := copyState(a)
	for i := 0; i < NextInputLanes; i++ {
		out[i] = new(big.Int).Add(a[i], next[i])
	}
	return out
}

// Mixing is the terminal step of the permutation: it converts the post-chi
// base-9 state to base 13, absorbs the next input block when one is given,
// and applies the final round's iota in base 13. The result is the
// permutation output, base-13 encoded with parity-decodable digits.
func Mixing(a State, next *[NextInputLanes]*big.Int) State {
	out := ToBase13(a)
	if next != nil {
		out = Absorb(out, *next)
	}
	out[0] = new(big.Int).Add(out[0], ToBase(RoundConstants[Rounds-1], B13))
	return out
}

// Permute runs the full 24-round permutation on a canonical base-13 state.
// When next is non-nil its lanes (canonical base 13) are absorbed during
// the final mixing step. The 24th round runs neither iota nor the base
// conversion; mixing takes their place.
func Permute(in State, next *[NextInputLanes]*big.Int) State {
	s := in
	for r := 0; r < Rounds; r++ {
		s = Theta(s)
		s = Rho(s)
		s = Pi(s)
		s = Chi(s)
		if r == Rounds-1 {
			break
		}
		s = IotaB9(s, r)
		s = ToBase13(s)
	}
	return Mixing(s, next)
}

func copyState(a State) State {
	var out State
	for i := range a {
		out[i] = new(big.Int).Set(a[i])
	}
	return out
}
