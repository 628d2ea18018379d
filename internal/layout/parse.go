package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports malformed declaration text.
type ParseError struct {
	Input string
	Pos   int // Byte offset of the problem
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing length %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

// ParseLength parses declaration text into a Length.
//
// Accepted forms are a bare number ("12", pixels), a number with a unit
// ("12px", "50%", "80vw", "10vh", "2rem", "1.5em"), and arithmetic with
// + - * / and parentheses, optionally wrapped in calc():
//
//	calc(100vw - 40px)
//	calc((100% - 2rem) / 3)
//
// * and / bind tighter than + and -; operators of equal precedence
// associate to the left.
func ParseLength(s string) (Length, error) {
	p := &lengthParser{input: s}
	p.skipSpace()
	if p.done() {
		return nil, p.errorf("empty declaration")
	}
	l, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.done() {
		return nil, p.errorf("unexpected %q", p.input[p.pos:])
	}
	return l, nil
}

// MustParseLength is like ParseLength but panics on error.
func MustParseLength(s string) Length {
	l, err := ParseLength(s)
	if err != nil {
		panic(err)
	}
	return l
}

type lengthParser struct {
	input string
	pos   int
}

func (p *lengthParser) done() bool {
	return p.pos >= len(p.input)
}

func (p *lengthParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.input[p.pos]
}

func (p *lengthParser) peekN(n int) byte {
	if p.pos+n >= len(p.input) {
		return 0
	}
	return p.input[p.pos+n]
}

func (p *lengthParser) skipSpace() {
	for !p.done() && isSpace(p.peek()) {
		p.pos++
	}
}

func (p *lengthParser) errorf(format string, args ...any) error {
	return &ParseError{Input: p.input, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

// parseSum parses term (('+' | '-') term)*.
func (p *lengthParser) parseSum() (Length, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op := Operator(string(p.peek()))
		if op != OpAdd && op != OpSub {
			return left, nil
		}
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		if left, err = NewExpression(left, op, right); err != nil {
			return nil, err
		}
	}
}

// parseProduct parses factor (('*' | '/') factor)*.
func (p *lengthParser) parseProduct() (Length, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op := Operator(string(p.peek()))
		if op != OpMul && op != OpDiv {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if left, err = NewExpression(left, op, right); err != nil {
			return nil, err
		}
	}
}

// parseFactor parses a number with an optional unit, a parenthesized
// expression, or calc(...).
func (p *lengthParser) parseFactor() (Length, error) {
	p.skipSpace()
	if p.done() {
		return nil, p.errorf("expected a value")
	}

	if p.peek() == '(' {
		return p.parseGroup()
	}
	if strings.HasPrefix(strings.ToLower(p.input[p.pos:]), "calc(") {
		p.pos += len("calc")
		return p.parseGroup()
	}
	return p.parseNumeric()
}

func (p *lengthParser) parseGroup() (Length, error) {
	p.pos++ // (
	inner, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != ')' {
		return nil, p.errorf("expected ')'")
	}
	p.pos++
	return inner, nil
}

// parseNumeric consumes a number followed by an optional unit.
func (p *lengthParser) parseNumeric() (Length, error) {
	start := p.pos

	// Sign
	if p.peek() == '+' || p.peek() == '-' {
		p.pos++
	}

	// Integer part
	digits := 0
	for isDigit(p.peek()) {
		p.pos++
		digits++
	}

	// Decimal part
	if p.peek() == '.' && isDigit(p.peekN(1)) {
		p.pos++
		for isDigit(p.peek()) {
			p.pos++
			digits++
		}
	}

	if digits == 0 {
		p.pos = start
		return nil, p.errorf("expected a number")
	}

	// Exponent part; "2em" is a unit, not an exponent.
	if p.peek() == 'e' || p.peek() == 'E' {
		next := p.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(p.peekN(2))) {
			p.pos += 2
			for isDigit(p.peek()) {
				p.pos++
			}
		}
	}

	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return nil, p.errorf("bad number: %v", err)
	}

	unitStart := p.pos
	if p.peek() == '%' {
		p.pos++
		return Percent(value), nil
	}
	for isLetter(p.peek()) {
		p.pos++
	}
	if p.pos == unitStart {
		return Number(value), nil
	}

	unit, ok := ParseUnit(p.input[unitStart:p.pos])
	if !ok {
		p.pos = unitStart
		return nil, p.errorf("unknown unit %q", p.input[unitStart:unitStart+countLetters(p.input[unitStart:])])
	}
	return Dimension{Amount: value, Unit: unit}, nil
}

// ParseUnit maps a unit suffix to its Unit. Matching is case-insensitive.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(s) {
	case "px":
		return UnitPixels, true
	case "%":
		return UnitPercent, true
	case "vw":
		return UnitViewportWidth, true
	case "vh":
		return UnitViewportHeight, true
	case "rem":
		return UnitRootFont, true
	case "em":
		return UnitParentFont, true
	default:
		return 0, false
	}
}

func countLetters(s string) int {
	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ParseDirection parses a flex-direction keyword.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "row", "":
		return Row, nil
	case "row-reverse":
		return RowReverse, nil
	case "column":
		return Column, nil
	case "column-reverse":
		return ColumnReverse, nil
	default:
		return Row, fmt.Errorf("unknown flex-direction %q", s)
	}
}

// ParseJustify parses a justify-content keyword. "start" and "end" are
// accepted as aliases of "flex-start" and "flex-end".
func ParseJustify(s string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flex-start", "start", "":
		return JustifyStart, nil
	case "flex-end", "end":
		return JustifyEnd, nil
	case "center":
		return JustifyCenter, nil
	case "space-between":
		return JustifySpaceBetween, nil
	case "space-around":
		return JustifySpaceAround, nil
	case "space-evenly":
		return JustifySpaceEvenly, nil
	default:
		return JustifyStart, fmt.Errorf("unknown justify-content %q", s)
	}
}

// ParseAlign parses an align-items keyword.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flex-start", "start", "":
		return AlignStart, nil
	case "flex-end", "end":
		return AlignEnd, nil
	case "center":
		return AlignCenter, nil
	case "stretch":
		return AlignStretch, nil
	case "baseline":
		return AlignBaseline, nil
	default:
		return AlignStart, fmt.Errorf("unknown align-items %q", s)
	}
}

// ParseWrap parses a flex-wrap keyword.
func ParseWrap(s string) (Wrap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nowrap", "":
		return NoWrap, nil
	case "wrap":
		return WrapLines, nil
	case "wrap-reverse":
		return WrapReverse, nil
	default:
		return NoWrap, fmt.Errorf("unknown flex-wrap %q", s)
	}
}
