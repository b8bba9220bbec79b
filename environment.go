package polish

import "sort"

// Environment keeps the user defined variables and functions of one
// session. It is not safe for concurrent use; concurrent sessions each need
// their own Environment.
type Environment struct {
	variables map[string]float64
	functions map[string]Function
}

func NewEnvironment() *Environment {
	return &Environment{
		variables: map[string]float64{},
		functions: map[string]Function{},
	}
}

// SetVar defines name, replacing any previous value.
func (env *Environment) SetVar(name string, value float64) {
	env.variables[name] = value
}

func (env *Environment) Var(name string) (float64, bool) {
	v, ok := env.variables[name]
	return v, ok
}

// SetFunc makes name call the built-in f.
func (env *Environment) SetFunc(name string, f Function) {
	env.functions[name] = f
}

func (env *Environment) Func(name string) (Function, bool) {
	f, ok := env.functions[name]
	return f, ok
}

// Binding is a name and its value, as listed by Variables.
type Binding struct {
	Name  string
	Value float64
}

// Variables returns the defined variables sorted by name.
func (env *Environment) Variables() []Binding {
	ret := make([]Binding, 0, len(env.variables))
	for name, v := range env.variables {
		ret = append(ret, Binding{name, v})
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret
}

// Functions returns the user function names sorted.
func (env *Environment) Functions() []string {
	ret := make([]string, 0, len(env.functions))
	for name := range env.functions {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Clear removes every variable and function.
func (env *Environment) Clear() {
	env.variables = map[string]float64{}
	env.functions = map[string]Function{}
}
