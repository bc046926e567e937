package toothgeom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Category is the anatomical family of a tooth. It selects which set of
// surface outlines is drawn.
type Category int

const (
	// Anterior covers incisors and canines, positions 1 to 3.
	Anterior Category = iota + 1
	// Premolar covers positions 4 and 5.
	Premolar
	// Molar covers positions 6 to 8 and any other last digit.
	Molar
)

func (c Category) String() string {
	switch c {
	case Anterior:
		return "anterior"
	case Premolar:
		return "premolar"
	case Molar:
		return "molar"
	default:
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
}

// ToothNumber is a tooth identifier in ISO 3950 (FDI) notation: a quadrant
// digit followed by a position digit counted from the midline.
//
// Any int is accepted. Numbers outside the dentition still classify and draw;
// use [ToothNumber.Valid] to reject them explicitly.
type ToothNumber int

// Classify maps a tooth number to its category using only the last digit.
// Positions 1 to 3 are anterior, 4 and 5 premolar, everything else molar.
// Negative numbers use the last digit of their magnitude, so -3 is anterior.
func Classify(n ToothNumber) Category {
	d := int(n) % 10
	if d < 0 {
		d = -d
	}
	switch d {
	case 1, 2, 3:
		return Anterior
	case 4, 5:
		return Premolar
	default:
		return Molar
	}
}

// Category is shorthand for Classify(n).
func (n ToothNumber) Category() Category { return Classify(n) }

// Quadrant returns the first digit: 1 to 4 for permanent teeth, 5 to 8 for
// deciduous ones.
func (n ToothNumber) Quadrant() int { return int(n) / 10 }

// Position returns the last digit, counted from the midline.
func (n ToothNumber) Position() int { return int(n) % 10 }

// Valid reports whether n names a tooth of the permanent or deciduous
// dentition.
func (n ToothNumber) Valid() bool {
	q, p := n.Quadrant(), n.Position()
	switch {
	case q >= 1 && q <= 4:
		return p >= 1 && p <= 8
	case q >= 5 && q <= 8:
		return p >= 1 && p <= 5
	default:
		return false
	}
}

// IsDeciduous reports whether n lies in one of the deciduous quadrants.
func (n ToothNumber) IsDeciduous() bool {
	q := n.Quadrant()
	return q >= 5 && q <= 8
}

// IsUpperJaw reports whether n is a maxillary tooth.
func (n ToothNumber) IsUpperJaw() bool {
	return (n >= 11 && n <= 28) || (n >= 51 && n <= 65)
}

// ShouldMirror reports whether n sits on the patient's left side, where
// artwork drawn for the right side has to be mirrored.
func (n ToothNumber) ShouldMirror() bool {
	switch n.Quadrant() {
	case 2, 3, 6, 7:
		return true
	default:
		return false
	}
}

// BaseNumber returns the tooth at the same position on the patient's right
// side of the same jaw. Right-side teeth are returned unchanged.
func (n ToothNumber) BaseNumber() ToothNumber {
	p := ToothNumber(n.Position())
	switch n.Quadrant() {
	case 2:
		return 10 + p
	case 3:
		return 40 + p
	case 6:
		return 50 + p
	case 7:
		return 80 + p
	default:
		return n
	}
}

func (n ToothNumber) String() string {
	return strconv.Itoa(int(n))
}

// ErrInvalidToothNumber is wrapped by ParseToothNumber errors.
var ErrInvalidToothNumber = errors.New("invalid tooth number")

// ParseToothNumber parses a decimal tooth number. Only the syntax is checked;
// the result may still be outside the dentition.
func ParseToothNumber(s string) (ToothNumber, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidToothNumber, s, err)
	}
	return ToothNumber(v), nil
}

// Teeth of each quadrant, in the order a chart row displays them.
var (
	PermanentTeeth = [4][]ToothNumber{
		{18, 17, 16, 15, 14, 13, 12, 11},
		{21, 22, 23, 24, 25, 26, 27, 28},
		{31, 32, 33, 34, 35, 36, 37, 38},
		{41, 42, 43, 44, 45, 46, 47, 48},
	}
	DeciduousTeeth = [4][]ToothNumber{
		{55, 54, 53, 52, 51},
		{61, 62, 63, 64, 65},
		{71, 72, 73, 74, 75},
		{81, 82, 83, 84, 85},
	}
)
