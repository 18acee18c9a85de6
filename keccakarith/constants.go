package keccakarith

// Numeral bases used by the arithmetization. Base 13 gives theta headroom
// for its fan-in of eleven digit contributions per position, base 9 holds
// the chi output together with absorbed input and round-constant bits.
const (
	B2  = 2
	B9  = 9
	B13 = 13
)

const (
	// LaneBits is the width of one Keccak lane.
	LaneBits = 64
	// Rounds is the number of rounds of Keccak-f[1600].
	Rounds = 24
	// NextInputLanes is the sponge rate of Keccak-256 in lanes.
	NextInputLanes = 17
)

// RoundConstants are the standard Keccak-f[1600] iota constants.
var RoundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A,
	0x8000000080008000, 0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008A,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// RotationOffsets holds the standard rho offsets, indexed [x][y] for the
// lane at Index(x, y).
var RotationOffsets = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// Index maps the (x, y) lane coordinates of the 5x5 state grid to the flat
// state index.
func Index(x, y int) int {
	return 5*x + y
}
