package game

import "math/bits"

// Direction is a bitmask of the four grid directions. A single set flag
// names one neighbor; interior body cells carry two flags, one per
// sequence neighbor.
type Direction uint8

const (
	DirUp Direction = 1 << iota
	DirRight
	DirDown
	DirLeft

	DirNone Direction = 0
	DirAll            = DirUp | DirRight | DirDown | DirLeft
)

// Valid reports whether exactly one direction flag is set.
func (d Direction) Valid() bool {
	return d != 0 && d&DirAll == d && d&(d-1) == 0
}

// Count returns the number of set direction flags.
func (d Direction) Count() int {
	return bits.OnesCount8(uint8(d & DirAll))
}

// Invert mirrors every set flag: up<->down, left<->right.
// The four flags sit two bit positions apart from their opposites,
// so a 2-bit rotate within the low nibble inverts all of them at once.
func (d Direction) Invert() Direction {
	d &= DirAll
	return (d<<2 | d>>2) & DirAll
}

// Has reports whether all flags in o are set in d.
func (d Direction) Has(o Direction) bool {
	return d&o == o
}

// Delta returns the row/column step for a single-flag direction.
// Multi-flag values return the sum of their components.
func (d Direction) Delta() (dr, dc int) {
	if d&DirUp != 0 {
		dr--
	}
	if d&DirDown != 0 {
		dr++
	}
	if d&DirLeft != 0 {
		dc--
	}
	if d&DirRight != 0 {
		dc++
	}
	return dr, dc
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	s := ""
	for _, f := range []Direction{DirUp, DirRight, DirDown, DirLeft} {
		if d&f != 0 {
			if s != "" {
				s += "|"
			}
			s += f.String()
		}
	}
	if s == "" {
		return "invalid"
	}
	return s
}
