// Package keccakarith evaluates the Keccak-f[1600] permutation over the
// packed numeral-base encodings used by the circuit in
// [github.com/zkarith/keccakf1600/keccakf]. Bitwise words are represented
// as big integers whose base-b digits carry the bits, so that field
// additions emulate XOR without carries. The package is the witness oracle
// for the circuit: it computes the exact intermediate values the gadget
// assigns, including non-canonical digit growth between normalizations.
package keccakarith

import "math/big"

// State is the 25-lane Keccak working state. The lane at grid position
// (x, y) lives at index Index(x, y). States are passed by value; the step
// evaluators never mutate their input.
type State [25]*big.Int

// ZeroState returns a state with every lane set to zero.
func ZeroState() State {
	var s State
	for i := range s {
		s[i] = new(big.Int)
	}
	return s
}

// ToBase encodes a 64-bit word canonically in the given base: bit i of the
// word becomes digit i of the result.
func ToBase(w uint64, base uint64) *big.Int {
	b := new(big.Int).SetUint64(base)
	acc := new(big.Int)
	one := big.NewInt(1)
	for i := LaneBits - 1; i >= 0; i-- {
		acc.Mul(acc, b)
		if (w>>i)&1 == 1 {
			acc.Add(acc, one)
		}
	}
	return acc
}

// FromBase decodes a base-b encoded lane back to a 64-bit word by taking
// the parity of every digit. Digits at positions 64 and above wrap onto
// position modulo 64, matching the wrap-around convention of the theta
// gate.
func FromBase(v *big.Int, base uint64) uint64 {
	b := new(big.Int).SetUint64(base)
	rem := new(big.Int)
	cur := new(big.Int).Set(v)
	var w uint64
	for i := 0; cur.Sign() != 0; i++ {
		cur.DivMod(cur, b, rem)
		w ^= (rem.Uint64() & 1) << (i % LaneBits)
	}
	return w
}

// Digits returns the n low base-b digits of v, little endian.
func Digits(v *big.Int, base uint64, n int) []uint64 {
	b := new(big.Int).SetUint64(base)
	rem := new(big.Int)
	cur := new(big.Int).Set(v)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		cur.DivMod(cur, b, rem)
		out[i] = rem.Uint64()
	}
	return out
}

// FromDigits packs base-b digits, little endian.
func FromDigits(digits []uint64, base uint64) *big.Int {
	b := new(big.Int).SetUint64(base)
	acc := new(big.Int)
	tmp := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		acc.Mul(acc, b)
		acc.Add(acc, tmp.SetUint64(digits[i]))
	}
	return acc
}

// RotateBase13 rotates a base-13 encoded lane left by r bit positions. The
// input may carry the extra 65th digit produced by theta; it is folded
// together with digit 0, both land on output position r.
func RotateBase13(v *big.Int, r int) *big.Int {
	d := Digits(v, B13, LaneBits+1)
	out := make([]uint64, LaneBits)
	for i := 1; i < LaneBits; i++ {
		out[(i+r)%LaneBits] = d[i]
	}
	out[r] = d[0] + d[LaneBits]
	return FromDigits(out, B13)
}

// Parity reduces a digit to the bit it carries.
func Parity(d uint64) uint64 {
	return d & 1
}

// ChiBit is the nonlinear chi combination over one digit triple:
// parity(a) XOR (NOT parity(b) AND parity(c)).
func ChiBit(a, b, c uint64) uint64 {
	return (a & 1) ^ (^b & 1 & c)
}

// StateFromWords encodes 25 plain words canonically in the given base.
func StateFromWords(words [25]uint64, base uint64) State {
	var s State
	for i, w := range words {
		s[i] = ToBase(w, base)
	}
	return s
}

// StateToWords parity-decodes every lane of s.
func StateToWords(s State, base uint64) [25]uint64 {
	var words [25]uint64
	for i, lane := range s {
		words[i] = FromBase(lane, base)
	}
	return words
}
