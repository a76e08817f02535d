package coord

import "fmt"

// Offset is a hex position in offset coordinates (column, row), the
// encoding map editors and file formats usually prefer. Which axial hex an
// offset pair denotes depends on an [OffsetLayout]; the four layouts cover
// pointy-top maps (staggered rows) and flat-top maps (staggered columns)
// with either the odd or the even lines shoved.
type Offset struct {
	Col, Row int
}

// Off is a convenience constructor for Offset.
func Off(col, row int) Offset {
	return Offset{Col: col, Row: row}
}

// String returns a string representation of the offset position.
func (o Offset) String() string {
	return fmt.Sprintf("off(%d,%d)", o.Col, o.Row)
}

// OffsetLayout names one of the four hex offset encodings.
type OffsetLayout uint8

const (
	// OddRow staggers odd rows; for pointy-top maps.
	OddRow OffsetLayout = iota
	// EvenRow staggers even rows; for pointy-top maps.
	EvenRow
	// OddCol staggers odd columns; for flat-top maps.
	OddCol
	// EvenCol staggers even columns; for flat-top maps.
	EvenCol
)

// String returns the layout name.
func (l OffsetLayout) String() string {
	switch l {
	case OddRow:
		return "odd-row"
	case EvenRow:
		return "even-row"
	case OddCol:
		return "odd-col"
	default:
		return "even-col"
	}
}

// ToAxial converts an offset position to axial coordinates under the given
// layout. The parity terms use bitwise AND, so negative columns and rows
// convert consistently with positive ones.
func (o Offset) ToAxial(l OffsetLayout) Hex {
	switch l {
	case OddRow:
		return Hex{Q: o.Col - (o.Row-(o.Row&1))/2, R: o.Row}
	case EvenRow:
		return Hex{Q: o.Col - (o.Row+(o.Row&1))/2, R: o.Row}
	case OddCol:
		return Hex{Q: o.Col, R: o.Row - (o.Col-(o.Col&1))/2}
	default: // EvenCol
		return Hex{Q: o.Col, R: o.Row - (o.Col+(o.Col&1))/2}
	}
}

// ToOffset converts an axial hex to offset coordinates under the given
// layout. It is the exact inverse of [Offset.ToAxial] for every hex.
func (c Hex) ToOffset(l OffsetLayout) Offset {
	switch l {
	case OddRow:
		return Offset{Col: c.Q + (c.R-(c.R&1))/2, Row: c.R}
	case EvenRow:
		return Offset{Col: c.Q + (c.R+(c.R&1))/2, Row: c.R}
	case OddCol:
		return Offset{Col: c.Q, Row: c.R + (c.Q-(c.Q&1))/2}
	default: // EvenCol
		return Offset{Col: c.Q, Row: c.R + (c.Q+(c.Q&1))/2}
	}
}
