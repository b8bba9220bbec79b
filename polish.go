// Package polish is an interpreter for a small prefix notation calculator
// language:
//
//	(+ 2 5)
//	(sqrt 16)
//	(set x 10)
//	(* x 2)
//
// A line is scanned into tokens, parsed into a Node and evaluated against an
// Environment that holds the variables of the session.
package polish

import "strings"

// Eval evaluates one line in a fresh environment.
func Eval(line string) (float64, error) {
	return Run(line, NewEnvironment())
}

// Run evaluates one line against env. A statement gives 0 on success.
func Run(line string, env *Environment) (float64, error) {
	node, err := ParseLine(line)
	if err != nil {
		return 0, err
	}
	return Exec(node, env)
}

// ParseLine scans and parses one line.
func ParseLine(line string) (Node, error) {
	tokens, err := Scan(strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Exec evaluates an expression or executes a statement.
func Exec(node Node, env *Environment) (float64, error) {
	switch t := node.(type) {
	case *Expression:
		return t.Eval(env)
	case *Statement:
		if err := t.Exec(env); err != nil {
			return 0, err
		}
		return 0, nil
	default:
		return 0, evalErrorf("Nothing to evaluate")
	}
}
