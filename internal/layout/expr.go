package layout

// Operator is the arithmetic operation applied by an Expression.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// Valid reports whether op is one of the four supported operators.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return true
	default:
		return false
	}
}

// Expression is a binary arithmetic tree over Lengths.
// Both operands are resolved against the same context and reference,
// left first, and the operator is applied last.
type Expression struct {
	left  Length
	right Length
	op    Operator
}

func (*Expression) isLength() {}

// NewExpression builds left op right. An operator outside + - * / or a nil
// operand fails here, never during evaluation.
func NewExpression(left Length, op Operator, right Length) (*Expression, error) {
	if !op.Valid() {
		return nil, &ConstructionError{Left: left, Right: right, Op: op, Err: ErrInvalidOperator}
	}
	if isNilLength(left) || isNilLength(right) {
		return nil, &ConstructionError{Left: left, Right: right, Op: op, Err: ErrMissingOperand}
	}
	return &Expression{left: left, right: right, op: op}, nil
}

// MustExpression is like NewExpression but panics on error.
// Use it for declarations written directly in code.
func MustExpression(left Length, op Operator, right Length) *Expression {
	e, err := NewExpression(left, op, right)
	if err != nil {
		panic(err)
	}
	return e
}

// Calc returns left + right. Subtraction is usually written with a negative
// operand: Calc(Vw(100), Px(-40)).
func Calc(left, right Length) *Expression {
	return MustExpression(left, OpAdd, right)
}

// Left returns the left operand.
func (e *Expression) Left() Length { return e.left }

// Right returns the right operand.
func (e *Expression) Right() Length { return e.right }

// Op returns the operator.
func (e *Expression) Op() Operator { return e.op }

func (e *Expression) String() string {
	if e == nil {
		return "calc()"
	}
	return "calc(" + operandString(e.left) + " " + string(e.op) + " " + operandString(e.right) + ")"
}

// operandString prints nested expressions without repeating the calc keyword.
func operandString(l Length) string {
	if e, ok := l.(*Expression); ok && e != nil {
		return "(" + operandString(e.left) + " " + string(e.op) + " " + operandString(e.right) + ")"
	}
	return lengthString(l)
}

func isNilLength(l Length) bool {
	if l == nil {
		return true
	}
	e, ok := l.(*Expression)
	return ok && e == nil
}
