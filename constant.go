package polish

import (
	"fmt"
	"math"
)

// Constant is a named mathematical constant.
type Constant int

const (
	Pi Constant = iota
	E
)

var constants = [...]struct {
	name  string
	value float64
}{
	Pi: {"pi", math.Pi},
	E:  {"e", math.E},
}

func LookupConstant(name string) (Constant, bool) {
	for c, def := range constants {
		if def.name == name {
			return Constant(c), true
		}
	}
	return 0, false
}

func (c Constant) String() string {
	if c < 0 || int(c) >= len(constants) {
		return fmt.Sprintf("Constant(%d)", int(c))
	}
	return constants[c].name
}

func (c Constant) Value() float64 {
	return constants[c].value
}
