package polish

import "fmt"

// Operator is one of the symbolic operators of the language.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Eq
	Lt
	LtEq
	Gt
	GtEq
	NotEq
)

// arity describes how many arguments a callable accepts. max < 0 means
// there is no upper bound.
type arity struct {
	min, max int
}

func exactly(n int) arity { return arity{n, n} }
func atLeast(n int) arity { return arity{n, -1} }

var countWords = [...]string{"no", "one", "two", "three"}

func (a arity) String() string {
	count := fmt.Sprint(a.min)
	if a.min < len(countWords) {
		count = countWords[a.min]
	}
	noun := "arguments"
	if a.min == 1 {
		noun = "argument"
	}
	if a.max < 0 {
		return fmt.Sprintf("at least %s %s", count, noun)
	}
	return fmt.Sprintf("%s %s", count, noun)
}

func (a arity) check(name string, n int) error {
	if n < a.min || (a.max >= 0 && n > a.max) {
		return evalErrorf("'%s' requires %v", name, a)
	}
	return nil
}

// primitives take pre-evaluated arguments
type primitive func(args []float64) (float64, error)

type operatorRule struct {
	symbol string
	arity  arity
	apply  primitive
}

var operators [NotEq + 1]operatorRule

func init() {
	operators = [...]operatorRule{
		Add:   {"+", atLeast(0), add},
		Sub:   {"-", atLeast(1), sub},
		Mul:   {"*", atLeast(0), mul},
		Div:   {"/", exactly(2), div},
		Eq:    {"==", atLeast(2), eq},
		Lt:    {"<", exactly(2), lt},
		LtEq:  {"<=", exactly(2), negated(gt)},
		Gt:    {">", exactly(2), gt},
		GtEq:  {">=", exactly(2), negated(lt)},
		NotEq: {"!=", exactly(2), negated(eq)},
	}
}

// LookupOperator returns the operator spelled s.
func LookupOperator(s string) (Operator, bool) {
	for op, rule := range operators {
		if rule.symbol == s {
			return Operator(op), true
		}
	}
	return 0, false
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operators) {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return operators[op].symbol
}

// Apply checks the arity of op and applies it to already evaluated
// arguments.
func (op Operator) Apply(args []float64) (float64, error) {
	if err := op.checkArity(len(args)); err != nil {
		return 0, err
	}
	return operators[op].apply(args)
}

func (op Operator) checkArity(n int) error {
	if op < 0 || int(op) >= len(operators) {
		return evalErrorf("Unknown operator %v", op)
	}
	rule := operators[op]
	return rule.arity.check(rule.symbol, n)
}

// Primitives

func add(args []float64) (float64, error) {
	return fold(0, args, func(r, x float64) float64 { return r + x }), nil
}

func sub(args []float64) (float64, error) {
	return fold(args[0], args[1:], func(r, x float64) float64 { return r - x }), nil
}

func mul(args []float64) (float64, error) {
	return fold(1, args, func(r, x float64) float64 { return r * x }), nil
}

func div(args []float64) (float64, error) {
	if args[1] == 0 {
		return 0, evalErrorf("Cannot divide by 0")
	}
	return args[0] / args[1], nil
}

func fold(seed float64, args []float64, accum func(float64, float64) float64) float64 {
	ret := seed
	for _, x := range args {
		ret = accum(ret, x)
	}
	return ret
}

// eq is true when every argument equals the first one.
func eq(args []float64) (float64, error) {
	first := args[0]
	for _, x := range args[1:] {
		if x != first {
			return 0, nil
		}
	}
	return 1, nil
}

func lt(args []float64) (float64, error) {
	return boolToFloat(args[0] < args[1]), nil
}

func gt(args []float64) (float64, error) {
	return boolToFloat(args[0] > args[1]), nil
}

func negated(p primitive) primitive {
	return func(args []float64) (float64, error) {
		ret, err := p(args)
		if err != nil {
			return 0, err
		}
		return boolToFloat(!isTruthy(ret)), nil
	}
}

// 0 is false, anything else is true
func isTruthy(x float64) bool {
	return x != 0
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
