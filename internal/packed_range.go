package internal

// A half-open integer interval packed as a 24-bit start and an 8-bit length
type PackedRange = uint32

// Packs the interval [startInclusive, endExclusive)
func PackRange(startInclusive, endExclusive int) PackedRange {
	length := endExclusive - startInclusive
	CheckArgument(startInclusive>>bits24 == 0, "range start %d does not fit in 24 bits", startInclusive)
	CheckArgument(length>>bits8 == 0, "range length %d does not fit in 8 bits", length)
	return Pack24x8(startInclusive, length)
}

func RangeLength(r PackedRange) int {
	return Unpack8(r)
}

func RangeStart(r PackedRange) int {
	return Unpack24(r)
}

func RangeEnd(r PackedRange) int {
	return RangeStart(r) + RangeLength(r)
}
