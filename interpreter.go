package polish

// Eval evaluates the expression against env. Arguments are evaluated left
// to right and the first error stops the evaluation.
func (e *Expression) Eval(env *Environment) (float64, error) {
	switch e.Kind {
	case NumberExpr:
		return e.Value, nil
	case VariableExpr:
		return lookupVariable(e.Name, env)
	case OperatorExpr:
		return evalOperator(e.Op, e.Args, env)
	case FunctionExpr:
		return callFunction(e.Name, e.Args, env)
	default:
		return 0, evalErrorf("Invalid expression kind %v", e.Kind)
	}
}

// Exec runs the statement, changing env.
func (s *Statement) Exec(env *Environment) error {
	switch s.Kind {
	case Assign:
		val, err := s.RHS.Eval(env)
		if err != nil {
			return err
		}
		env.SetVar(s.Name, val)
		return nil
	case FuncDef:
		return notImplementedf("Function definition is not yet implemented")
	default:
		return evalErrorf("Invalid statement kind %v", s.Kind)
	}
}

// user variables shadow constants
func lookupVariable(name string, env *Environment) (float64, error) {
	if v, ok := env.Var(name); ok {
		return v, nil
	}
	if c, ok := LookupConstant(name); ok {
		return c.Value(), nil
	}
	return 0, evalErrorf("Undefined constant '%s'", name)
}

func evalOperator(op Operator, args []*Expression, env *Environment) (float64, error) {
	if err := op.checkArity(len(args)); err != nil {
		return 0, err
	}
	vals, err := evalArgs(args, env)
	if err != nil {
		return 0, err
	}
	return operators[op].apply(vals)
}

// user functions shadow built-ins
func callFunction(name string, args []*Expression, env *Environment) (float64, error) {
	if f, ok := env.Func(name); ok {
		return f.Call(args, env)
	}
	if f, ok := LookupFunction(name); ok {
		return f.Call(args, env)
	}
	return 0, evalErrorf("Unknown function '%s'", name)
}

// eval all arguments in order
func evalArgs(args []*Expression, env *Environment) ([]float64, error) {
	vals := make([]float64, len(args))
	for i, arg := range args {
		v, err := arg.Eval(env)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
