// Defines the OrderTable, the externally supplied per-week, per-stage
// order decisions consumed by the stepper.

package sim

// OrderTable holds the weekly order decisions for all four stages: one
// row per week, one cell per stage in chain order. The table may be
// ragged or shorter than the run horizon; At fills every gap with the
// default quantity.
type OrderTable struct {
	Rows [][]int

	// DefaultQuantity substitutes for any missing or negative cell.
	DefaultQuantity int
}

// NewOrderTable creates an OrderTable over the given rows with the
// standard default quantity.
func NewOrderTable(rows [][]int) OrderTable {
	return OrderTable{Rows: rows, DefaultQuantity: DefaultOrderQuantity}
}

// At returns the order quantity for the given week and stage. A missing
// row, missing cell, or negative value is silently coerced to the
// default quantity, never to zero and never rejected.
func (t OrderTable) At(week int, stage Stage) int {
	if week < 0 || week >= len(t.Rows) {
		return t.DefaultQuantity
	}
	row := t.Rows[week]
	if int(stage) < 0 || int(stage) >= len(row) {
		return t.DefaultQuantity
	}
	qty := row[int(stage)]
	if qty < 0 {
		return t.DefaultQuantity
	}
	return qty
}

// Row returns the effective order row for the given week, with every
// cell resolved through At.
func (t OrderTable) Row(week int) [NumStages]int {
	var row [NumStages]int
	for i := range row {
		row[i] = t.At(week, Stage(i))
	}
	return row
}
