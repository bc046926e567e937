package toothgeom

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The output uses absolute commands only and is accepted by [ParsePath].
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}

// ErrBadPathData is wrapped by every error returned from [ParsePath].
var ErrBadPathData = errors.New("bad path data")

// ParseError describes where path data stopped making sense.
type ParseError struct {
	// Offset is the byte offset of the offending token.
	Offset int
	// Command is the command letter being parsed, or 0 before the first one.
	Command byte
	// Token is the offending text, up to the next separator. It is empty at
	// the end of the input.
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at offset %d", ErrBadPathData, e.Offset)
	if e.Command != 0 {
		fmt.Fprintf(&b, " in command '%c'", e.Command)
	}
	if e.Token != "" {
		fmt.Fprintf(&b, " near %q", e.Token)
	} else {
		b.WriteString(" at end of input")
	}
	fmt.Fprintf(&b, ": %s", e.Msg)
	return b.String()
}

// maxTokenLen caps ParseError.Token.
const maxTokenLen = 16

// tokenAt returns the text starting at path[i] up to the next separator.
func tokenAt(path []byte, i int) string {
	if i >= len(path) {
		return ""
	}
	j := i + 1
	for j < len(path) && j-i < maxTokenLen && skipCommaWhitespace(path[j:j+1]) == 0 {
		j++
	}
	return string(path[i:j])
}

func (e *ParseError) Unwrap() error { return ErrBadPathData }

var pathArgCounts = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParsePath parses SVG path data into a BezPath. It understands the M, L, H,
// V, C, S, Q, T and Z commands in absolute and relative form, including
// implicit repetition. H and V become LineTo, S and T become CubicTo and QuadTo
// with the reflected control point. Elliptical arcs are rejected.
//
// Empty input yields an empty path and no error.
func ParsePath(s string) (BezPath, error) {
	path := []byte(s)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return BezPath{}, nil
	}
	if path[0] == ',' || isNumberStart(path[i]) {
		if path[0] == ',' {
			i = 0
		}
		return nil, &ParseError{Offset: i, Token: tokenAt(path, i), Msg: "path should start with a command"}
	}

	var f [6]float64
	var p BezPath
	var start, cur, lastCtrl Point
	prevCmd := byte('Z')
	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}

		cmd := prevCmd
		cmdAt := i
		repeat := true
		if cmd == 'Z' || cmd == 'z' || !isNumberStart(path[i]) {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}
		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		argc, ok := pathArgCounts[upper]
		if !ok {
			return nil, &ParseError{Offset: cmdAt, Command: cmd, Token: tokenAt(path, cmdAt), Msg: "unknown command"}
		}
		for j := range argc {
			num, n := pstrconv.ParseFloat(path[i:])
			if n == 0 {
				if repeat && j == 0 {
					return nil, &ParseError{Offset: i, Command: cmd, Token: tokenAt(path, i), Msg: "unexpected character"}
				}
				return nil, &ParseError{Offset: i, Command: cmd, Token: tokenAt(path, i), Msg: fmt.Sprintf("expected %d numbers", argc)}
			}
			f[j] = num
			i += n
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Pt(cur.X+x, cur.Y+y)
			}
			return Pt(x, y)
		}
		// Reflection only applies directly after a command of the same family.
		reflect := func(family ...byte) Point {
			pu := prevCmd
			if 'a' <= pu && pu <= 'z' {
				pu -= 'a' - 'A'
			}
			for _, c := range family {
				if pu == c {
					return Pt(2*cur.X-lastCtrl.X, 2*cur.Y-lastCtrl.Y)
				}
			}
			return cur
		}

		switch upper {
		case 'M':
			cur = abs(f[0], f[1])
			start = cur
			p.MoveTo(cur)
			// Further coordinate pairs after a move are implicit line-tos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			p.ClosePath()
			cur = start
		case 'L':
			cur = abs(f[0], f[1])
			p.LineTo(cur)
		case 'H':
			x := f[0]
			if rel {
				x += cur.X
			}
			cur = Pt(x, cur.Y)
			p.LineTo(cur)
		case 'V':
			y := f[0]
			if rel {
				y += cur.Y
			}
			cur = Pt(cur.X, y)
			p.LineTo(cur)
		case 'C':
			c1, c2, end := abs(f[0], f[1]), abs(f[2], f[3]), abs(f[4], f[5])
			p.CubicTo(c1, c2, end)
			lastCtrl, cur = c2, end
		case 'S':
			c1 := reflect('C', 'S')
			c2, end := abs(f[0], f[1]), abs(f[2], f[3])
			p.CubicTo(c1, c2, end)
			lastCtrl, cur = c2, end
		case 'Q':
			c, end := abs(f[0], f[1]), abs(f[2], f[3])
			p.QuadTo(c, end)
			lastCtrl, cur = c, end
		case 'T':
			c := reflect('Q', 'T')
			end := abs(f[0], f[1])
			p.QuadTo(c, end)
			lastCtrl, cur = c, end
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParsePath is like [ParsePath] but panics on malformed input. It is
// meant for path data compiled into the program.
func MustParsePath(s string) BezPath {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ReplayPath parses SVG path data and issues the resulting commands on t,
// with every coordinate multiplied by (sx, sy). Nothing is issued if the data
// is malformed.
func ReplayPath(t Target, data string, sx, sy float64) error {
	p, err := ParsePath(data)
	if err != nil {
		return err
	}
	Issue(t, p.Transform(Scale(sx, sy)))
	return nil
}
