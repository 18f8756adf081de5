package csa

import (
	"strings"
)

// An immutable set of criteria, none of which dominates another, sorted by
// increasing value once payloads are ignored
type ParetoFront struct {
	criteria []Criteria
}

// The front without any tuple
var EmptyParetoFront = &ParetoFront{}

func (f *ParetoFront) Len() int {
	return len(f.criteria)
}

// Returns the tuple with the given arrival time and number of changes
func (f *ParetoFront) Get(arrMins, changes int) (Criteria, bool) {
	for _, c := range f.criteria {
		if c.ArrMins() == arrMins && c.Changes() == changes {
			return c, true
		}
	}
	return 0, false
}

func (f *ParetoFront) ForEach(fn func(Criteria)) {
	for _, c := range f.criteria {
		fn(c)
	}
}

func (f *ParetoFront) String() string {
	return formatFront(f.criteria)
}

func formatFront(criteria []Criteria) string {
	var sb strings.Builder
	sb.WriteString("ParetoFront{")
	for i, c := range criteria {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Accumulates criteria into a Pareto front
type ParetoBuilder struct {
	criteria []Criteria
}

func NewParetoBuilder() *ParetoBuilder {
	return &ParetoBuilder{criteria: make([]Criteria, 0, initialFrontCapacity)}
}

// Create a builder holding the same tuples as other
func NewParetoBuilderFrom(other *ParetoBuilder) *ParetoBuilder {
	capacity := max(int(float64(len(other.criteria))*frontGrowthFactor), initialFrontCapacity)
	criteria := make([]Criteria, len(other.criteria), capacity)
	copy(criteria, other.criteria)
	return &ParetoBuilder{criteria: criteria}
}

func (b *ParetoBuilder) IsEmpty() bool {
	return len(b.criteria) == 0
}

func (b *ParetoBuilder) Len() int {
	return len(b.criteria)
}

func (b *ParetoBuilder) Clear() *ParetoBuilder {
	b.criteria = b.criteria[:0]
	return b
}

// Add a tuple unless a tuple already present dominates or equals it, then
// drop every tuple the new one dominates
func (b *ParetoBuilder) Add(c Criteria) *ParetoBuilder {
	stripped := c.WithPayload(0)

	for _, existing := range b.criteria {
		if existing.DominatesOrIsEqual(stripped) {
			return b
		}
	}

	// Compact the survivors to the left, keeping their order
	kept := 0
	for _, existing := range b.criteria {
		if stripped.DominatesOrIsEqual(existing) {
			continue
		}
		b.criteria[kept] = existing
		kept++
	}
	b.criteria = b.criteria[:kept]

	pos := 0
	for pos < kept && b.criteria[pos].WithPayload(0) < stripped {
		pos++
	}

	if kept == cap(b.criteria) {
		capacity := max(int(float64(cap(b.criteria))*frontGrowthFactor), initialFrontCapacity)
		grown := make([]Criteria, kept, capacity)
		copy(grown, b.criteria)
		b.criteria = grown
	}
	b.criteria = b.criteria[:kept+1]
	copy(b.criteria[pos+1:], b.criteria[pos:kept])
	b.criteria[pos] = c
	return b
}

// Add a tuple without departure time
func (b *ParetoBuilder) AddPacked(arrMins, changes int, payload uint32) *ParetoBuilder {
	return b.Add(Pack(arrMins, changes, payload))
}

func (b *ParetoBuilder) AddAll(other *ParetoBuilder) *ParetoBuilder {
	for _, c := range other.criteria {
		b.Add(c)
	}
	return b
}

// Check if every tuple of other, once given the departure time depMins, is
// dominated or equalled by a tuple of this builder
func (b *ParetoBuilder) FullyDominates(other *ParetoBuilder, depMins int) bool {
	for _, c := range other.criteria {
		candidate := c.WithDepMins(depMins)
		dominated := false
		for _, existing := range b.criteria {
			if existing.DominatesOrIsEqual(candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}

func (b *ParetoBuilder) ForEach(fn func(Criteria)) {
	for _, c := range b.criteria {
		fn(c)
	}
}

// Returns the front built so far. Later changes to the builder do not affect it.
func (b *ParetoBuilder) Build() *ParetoFront {
	if len(b.criteria) == 0 {
		return EmptyParetoFront
	}
	criteria := make([]Criteria, len(b.criteria))
	copy(criteria, b.criteria)
	return &ParetoFront{criteria: criteria}
}

func (b *ParetoBuilder) String() string {
	return formatFront(b.criteria)
}
