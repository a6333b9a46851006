// Implements the SupplyLine, the FIFO delay line that carries in-transit
// quantities (shipments or orders) between adjacent stages.

package sim

import (
	"fmt"
	"strings"
)

// SupplyLine represents a FIFO sequence of quantities in transit toward a
// stage. With one Push and one Pop per week, a line holding leadTime
// entries delays every quantity by exactly leadTime weeks.
type SupplyLine struct {
	entries []int // FIFO queue of in-transit quantities
}

// NewSupplyLine creates a line pre-seeded with the given entries, oldest
// first. Pre-seeding is how the fixed lead time is established: two seed
// entries mean the first push is not popped until week 3.
func NewSupplyLine(seed ...int) *SupplyLine {
	sl := &SupplyLine{entries: make([]int, len(seed))}
	copy(sl.entries, seed)
	return sl
}

// Push appends a quantity to the back of the line.
func (sl *SupplyLine) Push(qty int) {
	sl.entries = append(sl.entries, qty)
}

// Pop removes and returns the quantity at the front of the line.
// Returns 0 if the line is empty; it never fails.
func (sl *SupplyLine) Pop() int {
	if len(sl.entries) == 0 {
		return 0
	}
	head := sl.entries[0]
	sl.entries = sl.entries[1:]
	return head
}

// Len returns the number of quantities currently in transit.
func (sl *SupplyLine) Len() int {
	return len(sl.entries)
}

// Peek returns the front quantity without removing it, or 0 if empty.
func (sl *SupplyLine) Peek() int {
	if len(sl.entries) == 0 {
		return 0
	}
	return sl.entries[0]
}

func (sl *SupplyLine) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, qty := range sl.entries {
		sb.WriteString(fmt.Sprint(qty))
		if i < len(sl.entries)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
