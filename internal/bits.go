package internal

// Bit widths of the two halves of a 24/8 packed word
const (
	bits8  = 8
	bits24 = 24

	mask8  = 1<<bits8 - 1
	mask24 = 1<<bits24 - 1
)

// Packs a 24-bit and an 8-bit value into one 32-bit word, the 24-bit value
// occupying the high bits
func Pack24x8(bits24Value, bits8Value int) uint32 {
	CheckArgument(bits24Value>>bits24 == 0, "%d does not fit in 24 bits", bits24Value)
	CheckArgument(bits8Value>>bits8 == 0, "%d does not fit in 8 bits", bits8Value)
	return uint32(bits24Value)<<bits8 | uint32(bits8Value)
}

// Returns the high 24 bits of a packed word
func Unpack24(bits32 uint32) int {
	return int(bits32>>bits8) & mask24
}

// Returns the low 8 bits of a packed word
func Unpack8(bits32 uint32) int {
	return int(bits32) & mask8
}
