// Package pathdata parses and re-emits the SVG path micro-language: the
// grammar of the <path> element's "d" attribute.
//
// The grammar allows a command letter to be followed by any number of
// repeated operand tuples with no intervening letter (implicit repetition),
// with the special case that a repeated M/m tuple is an implicit L/l. The
// serializer in this package performs the reverse optimization: it omits a
// command letter whenever the previous emitted letter already implies it,
// and formats numbers in their shortest round-tripping form at a given
// precision.
package pathdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CommandKind identifies which path command a Command represents.
type CommandKind int

const (
	MoveTo CommandKind = iota
	LineTo
	HorizontalTo
	VerticalTo
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	Arc
	ClosePath
)

// letters maps a CommandKind plus its relative flag to the command letter
// used in the grammar.
var letters = map[CommandKind][2]byte{
	MoveTo:        {'M', 'm'},
	LineTo:        {'L', 'l'},
	HorizontalTo:  {'H', 'h'},
	VerticalTo:    {'V', 'v'},
	CurveTo:       {'C', 'c'},
	SmoothCurveTo: {'S', 's'},
	QuadTo:        {'Q', 'q'},
	SmoothQuadTo:  {'T', 't'},
	Arc:           {'A', 'a'},
	ClosePath:     {'Z', 'z'},
}

func letterFor(kind CommandKind, relative bool) byte {
	pair := letters[kind]
	if relative {
		return pair[1]
	}
	return pair[0]
}

// Command is one path command. Every variant except ClosePath carries
// Relative plus its operands; unused fields are left zero. Arc additionally
// carries LargeArc and Sweep.
type Command struct {
	Kind     CommandKind
	Relative bool

	// MoveTo, LineTo: X, Y
	// HorizontalTo: X
	// VerticalTo: Y
	// CurveTo: X1, Y1, X2, Y2, X, Y
	// SmoothCurveTo: X2, Y2, X, Y
	// QuadTo: X1, Y1, X, Y
	// SmoothQuadTo: X, Y
	// Arc: RX, RY, XAxisRotation, LargeArc, Sweep, X, Y
	X, Y          float64
	X1, Y1        float64
	X2, Y2        float64
	RX, RY        float64
	XAxisRotation float64
	LargeArc      bool
	Sweep         bool
}

// Path is an ordered sequence of path commands.
type Path struct {
	Commands []Command
}

// ParseError reports a failure in the path grammar.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string { return fmt.Sprintf("invalid path data: %s", e.Detail) }

// Parse parses an SVG "d" attribute string into a sequence of commands.
func Parse(d string) (Path, error) {
	p := &parser{input: []rune(d)}
	return p.parse()
}

type parser struct {
	input []rune
	pos   int
}

func (p *parser) parse() (Path, error) {
	var commands []Command
	var lastLetter rune

	p.skipWhitespace()

	for !p.eof() {
		var cmd rune
		if isAlpha(p.peek()) {
			cmd = p.next()
			lastLetter = cmd
		} else {
			switch lastLetter {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			case 0:
				return Path{}, &ParseError{Detail: "expected command letter"}
			default:
				cmd = lastLetter
			}
		}

		parsed, err := p.parseCommand(cmd)
		if err != nil {
			return Path{}, err
		}
		commands = append(commands, parsed)
		p.skipWhitespaceAndComma()
	}

	return Path{Commands: commands}, nil
}

func (p *parser) parseCommand(cmd rune) (Command, error) {
	relative := cmd >= 'a' && cmd <= 'z'

	switch lower(cmd) {
	case 'm':
		x, y, err := p.pair()
		return Command{Kind: MoveTo, Relative: relative, X: x, Y: y}, err
	case 'l':
		x, y, err := p.pair()
		return Command{Kind: LineTo, Relative: relative, X: x, Y: y}, err
	case 'h':
		x, err := p.number()
		return Command{Kind: HorizontalTo, Relative: relative, X: x}, err
	case 'v':
		y, err := p.number()
		return Command{Kind: VerticalTo, Relative: relative, Y: y}, err
	case 'c':
		nums, err := p.numbers(6)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CurveTo, Relative: relative, X1: nums[0], Y1: nums[1], X2: nums[2], Y2: nums[3], X: nums[4], Y: nums[5]}, nil
	case 's':
		nums, err := p.numbers(4)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: SmoothCurveTo, Relative: relative, X2: nums[0], Y2: nums[1], X: nums[2], Y: nums[3]}, nil
	case 'q':
		nums, err := p.numbers(4)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: QuadTo, Relative: relative, X1: nums[0], Y1: nums[1], X: nums[2], Y: nums[3]}, nil
	case 't':
		x, y, err := p.pair()
		return Command{Kind: SmoothQuadTo, Relative: relative, X: x, Y: y}, err
	case 'a':
		rx, err := p.number()
		if err != nil {
			return Command{}, err
		}
		p.skipWhitespaceAndComma()
		ry, err := p.number()
		if err != nil {
			return Command{}, err
		}
		p.skipWhitespaceAndComma()
		rot, err := p.number()
		if err != nil {
			return Command{}, err
		}
		p.skipWhitespaceAndComma()
		large, err := p.flag()
		if err != nil {
			return Command{}, err
		}
		p.skipWhitespaceAndComma()
		sweep, err := p.flag()
		if err != nil {
			return Command{}, err
		}
		p.skipWhitespaceAndComma()
		x, err := p.number()
		if err != nil {
			return Command{}, err
		}
		p.skipWhitespaceAndComma()
		y, err := p.number()
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: Arc, Relative: relative, RX: rx, RY: ry, XAxisRotation: rot, LargeArc: large, Sweep: sweep, X: x, Y: y}, nil
	case 'z':
		return Command{Kind: ClosePath}, nil
	default:
		return Command{}, &ParseError{Detail: fmt.Sprintf("unknown command: %c", cmd)}
	}
}

func (p *parser) pair() (float64, float64, error) {
	x, err := p.number()
	if err != nil {
		return 0, 0, err
	}
	p.skipWhitespaceAndComma()
	y, err := p.number()
	return x, y, err
}

func (p *parser) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			p.skipWhitespaceAndComma()
		}
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (p *parser) number() (float64, error) {
	p.skipWhitespaceAndComma()
	start := p.pos

	if p.peek() == '-' || p.peek() == '+' {
		p.next()
	}
	for isDigit(p.peek()) {
		p.next()
	}
	if p.peek() == '.' {
		p.next()
		for isDigit(p.peek()) {
			p.next()
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		p.next()
		if p.peek() == '-' || p.peek() == '+' {
			p.next()
		}
		for isDigit(p.peek()) {
			p.next()
		}
	}

	s := string(p.input[start:p.pos])
	if s == "" {
		return 0, &ParseError{Detail: "expected number"}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Detail: fmt.Sprintf("invalid number: %s", s)}
	}
	return v, nil
}

func (p *parser) flag() (bool, error) {
	p.skipWhitespaceAndComma()
	c := p.next()
	switch c {
	case '0':
		return false, nil
	case '1':
		return true, nil
	case 0:
		return false, &ParseError{Detail: "expected flag"}
	default:
		return false, &ParseError{Detail: fmt.Sprintf("expected flag (0 or 1), got: %c", c)}
	}
}

func (p *parser) skipWhitespace() {
	for isSpace(p.peek()) {
		p.next()
	}
}

func (p *parser) skipWhitespaceAndComma() {
	p.skipWhitespace()
	if p.peek() == ',' {
		p.next()
	}
	p.skipWhitespace()
}

func (p *parser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) next() rune {
	c := p.peek()
	if c != 0 {
		p.pos++
	}
	return c
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func lower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Serialize re-emits path with the given number of fractional digits,
// eliding command letters and separators wherever the grammar allows.
func Serialize(path Path, precision uint) string {
	var out strings.Builder
	var prevLetter rune

	for _, cmd := range path.Commands {
		cmdLetter := rune(letterFor(cmd.Kind, cmd.Relative))
		if cmd.Kind == ClosePath {
			// Close-path always re-emits lowercase, regardless of
			// whether the input used Z or z.
			cmdLetter = 'z'
		}
		var rendered string

		if cmd.Kind == Arc {
			rendered = formatArc(cmdLetter, prevLetter, cmd, precision)
		} else {
			rendered = formatCmd(cmdLetter, prevLetter, args(cmd), precision)
		}

		appendWithSeparator(&out, rendered)
		prevLetter = cmdLetter
	}

	return out.String()
}

func args(cmd Command) []float64 {
	switch cmd.Kind {
	case MoveTo, LineTo:
		return []float64{cmd.X, cmd.Y}
	case HorizontalTo:
		return []float64{cmd.X}
	case VerticalTo:
		return []float64{cmd.Y}
	case CurveTo:
		return []float64{cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.X, cmd.Y}
	case SmoothCurveTo:
		return []float64{cmd.X2, cmd.Y2, cmd.X, cmd.Y}
	case QuadTo:
		return []float64{cmd.X1, cmd.Y1, cmd.X, cmd.Y}
	case SmoothQuadTo:
		return []float64{cmd.X, cmd.Y}
	case ClosePath:
		return nil
	}
	return nil
}

// needsCommandLetter decides whether to emit the command letter, applying
// the path grammar's implicit-lineto-after-moveto elision rule.
func needsCommandLetter(letter, prevLetter rune) bool {
	if prevLetter == 0 {
		return true
	}
	if prevLetter == 'M' && letter == 'L' {
		return false
	}
	if prevLetter == 'm' && letter == 'l' {
		return false
	}
	return prevLetter != letter
}

func formatCmd(letter, prevLetter rune, nums []float64, precision uint) string {
	var out strings.Builder

	if len(nums) == 0 {
		out.WriteRune(letter)
		return out.String()
	}

	if needsCommandLetter(letter, prevLetter) {
		out.WriteRune(letter)
	}

	for _, n := range nums {
		appendNumber(&out, n, precision)
	}

	return out.String()
}

func formatArc(letter, prevLetter rune, cmd Command, precision uint) string {
	var out strings.Builder

	if prevLetter != letter {
		out.WriteRune(letter)
	}

	appendNumber(&out, cmd.RX, precision)
	appendNumber(&out, cmd.RY, precision)
	appendNumber(&out, cmd.XAxisRotation, precision)
	appendFlag(&out, cmd.LargeArc)
	appendFlag(&out, cmd.Sweep)
	appendNumber(&out, cmd.X, precision)
	appendNumber(&out, cmd.Y, precision)

	return out.String()
}

func appendFlag(out *strings.Builder, flag bool) {
	s := "0"
	if flag {
		s = "1"
	}
	needsSeparator(out, s)
	out.WriteString(s)
}

func appendNumber(out *strings.Builder, n float64, precision uint) {
	s := FormatNumber(n, precision)
	needsSeparator(out, s)
	out.WriteString(s)
}

func needsSeparator(out *strings.Builder, next string) {
	if out.Len() == 0 || next == "" {
		return
	}
	prevText := out.String()
	last := prevText[len(prevText)-1]
	first := next[0]
	if (isDigitByte(last) || last == '.') && (isDigitByte(first) || first == '.') {
		out.WriteByte(' ')
	}
}

func appendWithSeparator(out *strings.Builder, next string) {
	needsSeparator(out, next)
	out.WriteString(next)
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

// FormatNumber renders n at the given precision, trimming trailing zeros
// and a bare leading zero before the decimal point ("0.5" -> ".5",
// "-0.5" -> "-.5"). Zero is always "0".
func FormatNumber(n float64, precision uint) string {
	if n == 0 {
		return "0"
	}

	factor := math.Pow10(int(precision))
	rounded := math.Round(n*factor) / factor

	if rounded == math.Trunc(rounded) {
		return strconv.FormatInt(int64(rounded), 10)
	}

	s := strconv.FormatFloat(rounded, 'f', int(precision), 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}

	switch {
	case strings.HasPrefix(s, "0."):
		s = s[1:]
	case strings.HasPrefix(s, "-0."):
		s = "-" + s[2:]
	}

	return s
}
