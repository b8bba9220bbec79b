package polish

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Print renders a node back to source form, fully parenthesized.
func Print(n Node) string {
	switch t := n.(type) {
	case *Expression:
		return printExpr(t)
	case *Statement:
		if t == nil {
			return "nil"
		}
		keyword := Set
		if t.Kind == FuncDef {
			keyword = Def
		}
		return fmt.Sprintf("(%v %s %s)", keyword, t.Name, printExpr(t.RHS))
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func printExpr(e *Expression) string {
	if e == nil {
		return "nil"
	}
	switch e.Kind {
	case NumberExpr:
		return FormatNumber(e.Value)
	case VariableExpr:
		return e.Name
	}

	arr := make([]string, len(e.Args)+1)
	if e.Kind == OperatorExpr {
		arr[0] = e.Op.String()
	} else {
		arr[0] = e.Name
	}
	for i, arg := range e.Args {
		arr[i+1] = printExpr(arg)
	}
	return fmt.Sprintf("(%s)", strings.Join(arr, " "))
}

// FormatNumber gives the shortest text that reads back as x, without an
// exponent unless x is very large or very small.
func FormatNumber(x float64) string {
	abs := math.Abs(x)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// PrintTokens renders tokens separated by spaces.
func PrintTokens(tokens []Token) string {
	arr := make([]string, len(tokens))
	for i, t := range tokens {
		arr[i] = t.String()
	}
	return strings.Join(arr, " ")
}
