// Package tile describes the directional solidity of a single grid cell.
package tile

// Bits of a bound byte. A set bit blocks entry through that side.
const (
	BoundTop    byte = 1 << 0
	BoundLeft   byte = 1 << 1
	BoundRight  byte = 1 << 2
	BoundBottom byte = 1 << 3
)

// Tile is a value type; two tiles with the same sides are interchangeable.
type Tile struct {
	SolidLeft   bool
	SolidRight  bool
	SolidTop    bool
	SolidBottom bool
}

var (
	Empty = Tile{}
	Solid = Tile{SolidLeft: true, SolidRight: true, SolidTop: true, SolidBottom: true}
)

func FromBoundByte(b byte) Tile {
	return Tile{
		SolidTop:    b&BoundTop != 0,
		SolidLeft:   b&BoundLeft != 0,
		SolidRight:  b&BoundRight != 0,
		SolidBottom: b&BoundBottom != 0,
	}
}

func (t Tile) BoundByte() byte {
	var b byte
	if t.SolidTop {
		b |= BoundTop
	}
	if t.SolidLeft {
		b |= BoundLeft
	}
	if t.SolidRight {
		b |= BoundRight
	}
	if t.SolidBottom {
		b |= BoundBottom
	}
	return b
}

// IsOpen reports whether the tile blocks nothing.
func (t Tile) IsOpen() bool {
	return t == Empty
}
