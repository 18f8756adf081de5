package csa

// Bit layout of a Criteria word
const (
	payloadBits = 32
	changesBits = 7
	minutesBits = 12

	changesShift = payloadBits
	arrShift     = changesShift + changesBits
	depShift     = arrShift + minutesBits

	payloadMask = 1<<payloadBits - 1
	changesMask = 1<<changesBits - 1
	minutesMask = 1<<minutesBits - 1
)

// Valid range of times in minutes after midnight of the service date.
// Times are stored relative to OriginMins so they are never negative.
const (
	OriginMins = -240
	MaxMins    = 2880
)

// Pareto builder sizing
const (
	initialFrontCapacity = 2
	frontGrowthFactor    = 1.5
)
