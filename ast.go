package polish

import "fmt"

// Node is the result of parsing one line: either an *Expression or a
// *Statement. The set is closed.
type Node interface {
	node()
	String() string
}

type ExprKind int

const (
	OperatorExpr ExprKind = iota
	FunctionExpr
	NumberExpr
	VariableExpr
)

func (k ExprKind) String() string {
	switch k {
	case OperatorExpr:
		return "Operator"
	case FunctionExpr:
		return "Function"
	case NumberExpr:
		return "Number"
	case VariableExpr:
		return "Variable"
	default:
		return fmt.Sprintf("ExprKind(%d)", int(k))
	}
}

// Expression is a value producing tree node. Op is set for OperatorExpr,
// Name for FunctionExpr and VariableExpr, Value for NumberExpr. Args is
// empty for the leaves.
type Expression struct {
	Kind  ExprKind
	Op    Operator
	Name  string
	Value float64
	Args  []*Expression
}

func OperatorCall(op Operator, args ...*Expression) *Expression {
	return &Expression{Kind: OperatorExpr, Op: op, Args: args}
}

func FunctionCall(name string, args ...*Expression) *Expression {
	return &Expression{Kind: FunctionExpr, Name: name, Args: args}
}

func Number(x float64) *Expression {
	return &Expression{Kind: NumberExpr, Value: x}
}

func Variable(name string) *Expression {
	return &Expression{Kind: VariableExpr, Name: name}
}

type StmtKind int

const (
	Assign StmtKind = iota
	FuncDef
)

func (k StmtKind) String() string {
	switch k {
	case Assign:
		return "Assign"
	case FuncDef:
		return "FuncDef"
	default:
		return fmt.Sprintf("StmtKind(%d)", int(k))
	}
}

// Statement changes the environment and has no value.
type Statement struct {
	Kind StmtKind
	Name string
	RHS  *Expression
}

func (*Expression) node() {}
func (*Statement) node() {}

func (e *Expression) String() string { return Print(e) }
func (s *Statement) String() string { return Print(s) }
