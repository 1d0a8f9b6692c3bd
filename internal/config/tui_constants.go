package config

// Terminal layout constants. The field is laid out in ordinary layout units
// and sampled onto the cell grid, so border widths, margins and gaps keep the
// same values as in the pixel renderers.
const (
	// CellWidth and CellHeight are the layout units covered by one cell.
	CellWidth  = 10.0
	CellHeight = 20.0

	// CellsPerSlot is the preferred width of one slot.
	CellsPerSlot = 4

	// FieldRows is the height of the field: border, content, border.
	FieldRows = 3

	// MinFieldCells keeps tiny lengths readable.
	MinFieldCells = 9

	// StatusWidth caps the status line before truncation.
	StatusWidth = 60
)

// FieldCells returns the terminal width used for a field of n slots.
func FieldCells(n int) int {
	w := n*CellsPerSlot + 1
	if w < MinFieldCells {
		return MinFieldCells
	}
	return w
}
