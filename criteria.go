package csa

import (
	"fmt"

	"github.com/aaroncutress/csa-go/internal"
)

// Criteria packs the optimisation criteria of a journey with a 32-bit
// payload into one word:
//
//	bit 63      always 0
//	bits 62-51  departure, stored as 4095 - (dep - OriginMins); 0 means absent
//	bits 50-39  arrival, stored as arr - OriginMins
//	bits 38-32  number of changes
//	bits 31-0   payload
//
// Departure is stored complemented so that, with the payload cleared, a
// smaller word departs later, arrives earlier and changes less.
type Criteria uint64

// Pack criteria without a departure time
func Pack(arrMins, changes int, payload uint32) Criteria {
	internal.CheckArgument(OriginMins <= arrMins && arrMins < MaxMins,
		"arrival %d outside [%d, %d)", arrMins, OriginMins, MaxMins)
	internal.CheckArgument(changes >= 0 && changes>>changesBits == 0,
		"%d changes do not fit in %d bits", changes, changesBits)

	return Criteria(uint64(arrMins-OriginMins)<<arrShift |
		uint64(changes)<<changesShift |
		uint64(payload))
}

func (c Criteria) field(shift, mask uint64) int {
	return int(uint64(c) >> shift & mask)
}

func (c Criteria) replace(shift, mask, value uint64) Criteria {
	cleared := uint64(c) &^ (mask << shift)
	return Criteria(cleared | (value&mask)<<shift)
}

func (c Criteria) HasDepMins() bool {
	return c.field(depShift, minutesMask) != 0
}

// Departure time in minutes; panics if the criteria have none
func (c Criteria) DepMins() int {
	internal.CheckArgument(c.HasDepMins(), "criteria have no departure time")
	return minutesMask - c.field(depShift, minutesMask) + OriginMins
}

func (c Criteria) ArrMins() int {
	return c.field(arrShift, minutesMask) + OriginMins
}

func (c Criteria) Changes() int {
	return c.field(changesShift, changesMask)
}

func (c Criteria) Payload() uint32 {
	return uint32(c.field(0, payloadMask))
}

// Check if c is at least as good as other on every criterion. Both must
// either have a departure time or not.
func (c Criteria) DominatesOrIsEqual(other Criteria) bool {
	internal.CheckArgument(c.HasDepMins() == other.HasDepMins(),
		"cannot compare criteria with and without departure time")

	if c.ArrMins() > other.ArrMins() || c.Changes() > other.Changes() {
		return false
	}
	return !c.HasDepMins() || c.DepMins() >= other.DepMins()
}

func (c Criteria) WithoutDepMins() Criteria {
	return c.replace(depShift, minutesMask, 0)
}

func (c Criteria) WithDepMins(depMins int) Criteria {
	internal.CheckArgument(OriginMins <= depMins && depMins < MaxMins,
		"departure %d outside [%d, %d)", depMins, OriginMins, MaxMins)
	return c.replace(depShift, minutesMask, uint64(minutesMask-(depMins-OriginMins)))
}

func (c Criteria) WithAdditionalChange() Criteria {
	internal.CheckArgument(c.Changes() < changesMask, "changes overflow %d bits", changesBits)
	return c.replace(changesShift, changesMask, uint64(c.Changes()+1))
}

func (c Criteria) WithPayload(payload uint32) Criteria {
	return c.replace(0, payloadMask, uint64(payload))
}

func (c Criteria) String() string {
	dep := "-"
	if c.HasDepMins() {
		dep = formatMins(c.DepMins())
	}
	return fmt.Sprintf("[dep %s, arr %s, %d changes]", dep, formatMins(c.ArrMins()), c.Changes())
}

// Formats minutes after midnight as HH:MM, negative times with a sign
func formatMins(mins int) string {
	sign := ""
	if mins < 0 {
		sign, mins = "-", -mins
	}
	return fmt.Sprintf("%s%02d:%02d", sign, mins/60, mins%60)
}
