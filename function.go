package polish

import (
	"fmt"
	"math"
)

// Function is a built-in function. Functions receive their arguments
// unevaluated so that they can decide what to evaluate.
type Function int

const (
	Sqrt Function = iota
	Pow
	If
)

// special forms take unevaluated arguments and the env
type specialform func(args []*Expression, env *Environment) (float64, error)

type functionRule struct {
	name  string
	arity arity
	call  specialform
}

var functions [If + 1]functionRule

func init() {
	functions = [...]functionRule{
		Sqrt: {"sqrt", exactly(1), sqrt},
		Pow:  {"pow", exactly(2), pow},
		If:   {"if", exactly(3), ifprim},
	}
}

// LookupFunction returns the built-in function called name.
func LookupFunction(name string) (Function, bool) {
	for f, rule := range functions {
		if rule.name == name {
			return Function(f), true
		}
	}
	return 0, false
}

func (f Function) String() string {
	if f < 0 || int(f) >= len(functions) {
		return fmt.Sprintf("Function(%d)", int(f))
	}
	return functions[f].name
}

// Call checks the arity of f and calls it with unevaluated arguments.
func (f Function) Call(args []*Expression, env *Environment) (float64, error) {
	if f < 0 || int(f) >= len(functions) {
		return 0, evalErrorf("Unknown function %v", f)
	}
	rule := functions[f]
	if err := rule.arity.check(rule.name, len(args)); err != nil {
		return 0, err
	}
	return rule.call(args, env)
}

func sqrt(args []*Expression, env *Environment) (float64, error) {
	x, err := args[0].Eval(env)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(x), nil
}

func pow(args []*Expression, env *Environment) (float64, error) {
	vals, err := evalArgs(args, env)
	if err != nil {
		return 0, err
	}
	return math.Pow(vals[0], vals[1]), nil
}

// ifprim only evaluates the selected branch.
func ifprim(args []*Expression, env *Environment) (float64, error) {
	cond, err := args[0].Eval(env)
	if err != nil {
		return 0, err
	}
	if isTruthy(cond) {
		return args[1].Eval(env)
	}
	return args[2].Eval(env)
}
