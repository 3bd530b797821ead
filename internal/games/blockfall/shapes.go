package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies a catalog shape. Settled board cells store the kind of the
// piece that produced them, so Empty (0) is the only unoccupied value.
type Kind uint8

const (
	Empty Kind = iota
	KindO
	KindT
	KindI
	KindJ
	KindL
	KindS
	KindZ
)

// Shape is an immutable catalog template: cell offsets inside a square
// bounding box of BoxSize cells, with (0,0) at the box's top-left.
type Shape struct {
	Kind    Kind
	Offsets [4]core.Point
	BoxSize int
}

// Shapes is the catalog spawned from. Offset order is significant: it is the
// order cells are enumerated when rows are checked after a lock.
var Shapes = [...]Shape{
	{Kind: KindO, BoxSize: 2, Offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	{Kind: KindT, BoxSize: 3, Offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}},
	{Kind: KindI, BoxSize: 4, Offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
	{Kind: KindJ, BoxSize: 3, Offsets: [4]core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}},
	{Kind: KindL, BoxSize: 3, Offsets: [4]core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}},
	{Kind: KindS, BoxSize: 3, Offsets: [4]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 2}}},
	{Kind: KindZ, BoxSize: 3, Offsets: [4]core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}},
}

// ShapeOf returns the catalog entry for a kind.
func ShapeOf(k Kind) (Shape, bool) {
	for _, s := range Shapes {
		if s.Kind == k {
			return s, true
		}
	}
	return Shape{}, false
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "."
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Color returns the palette entry used to paint the kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindI:
		return core.ColorCyan
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	default:
		return core.ColorNone
	}
}
