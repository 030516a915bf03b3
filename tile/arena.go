package tile

// ID indexes the shared tile arena. Grid cells store IDs, never Tiles.
type ID uint8

const (
	EmptyID ID = 0
	SolidID ID = ID(BoundTop | BoundLeft | BoundRight | BoundBottom)
)

// Only sixteen distinct tiles exist, so the arena is a fixed table keyed by
// bound byte.
var arena [16]Tile

func init() {
	for i := range arena {
		arena[i] = FromBoundByte(byte(i))
	}
}

// IDForBounds maps a raw bound value from level data into the arena. Bits
// above the low nibble are ignored.
func IDForBounds(bounds int) ID {
	return ID(bounds & 0x0f)
}

func (id ID) Tile() Tile {
	return arena[id&0x0f]
}
