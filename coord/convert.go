package coord

// Conversions between coordinate systems. Square and isometric grids share
// one logical lattice, so those conversions are exact and reversible. Hex
// grids have a genuinely different neighbor structure; the hex conversions
// are stated approximations that preserve rough spatial layout and are not
// round-trip safe.

// ToIso converts a square position to the isometric grid (exact).
func (c Square4) ToIso() Iso {
	return Iso{X: c.X, Y: c.Y}
}

// ToIso converts an 8-connected square position to the isometric grid
// (exact).
func (c Square8) ToIso() Iso {
	return Iso{X: c.X, Y: c.Y}
}

// ToSquare converts an isometric position to the square grid (exact).
func (c Iso) ToSquare() Square4 {
	return Square4{X: c.X, Y: c.Y}
}

// ToSquare approximates this hex as a square position by de-shearing the
// axial axes: x = q + r/2, y = r (truncating division).
func (c Hex) ToSquare() Square4 {
	return Square4{X: c.Q + c.R/2, Y: c.R}
}

// ToHex approximates this square position as an axial hex:
// q = x - y/2, r = y (truncating division).
func (c Square4) ToHex() Hex {
	return Hex{Q: c.X - c.Y/2, R: c.Y}
}

// ToHex approximates this isometric position as an axial hex, via the
// exact square mapping.
func (c Iso) ToHex() Hex {
	return c.ToSquare().ToHex()
}

// ToIso approximates this hex as an isometric position, via the square
// mapping.
func (c Hex) ToIso() Iso {
	return c.ToSquare().ToIso()
}

// MapCoords converts a slice of coordinates through f, preserving order.
// It serves as the batch form of any single-coordinate conversion.
func MapCoords[A, B any](in []A, f func(A) B) []B {
	if in == nil {
		return nil
	}
	out := make([]B, len(in))
	for i, a := range in {
		out[i] = f(a)
	}
	return out
}
