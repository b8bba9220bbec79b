package polish

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tells at which stage a line was rejected.
type ErrorKind int

const (
	LexicalError ErrorKind = iota
	SyntaxError
	EvalError
	NotImplementedError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case SyntaxError:
		return "syntax"
	case EvalError:
		return "eval"
	case NotImplementedError:
		return "not implemented"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is returned by every stage of the pipeline. Msg is meant for humans
// and is printed as is by the read loop.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(kind ErrorKind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

func lexErrorf(format string, args ...interface{}) error {
	return newError(LexicalError, format, args...)
}

func syntaxErrorf(format string, args ...interface{}) error {
	return newError(SyntaxError, format, args...)
}

func evalErrorf(format string, args ...interface{}) error {
	return newError(EvalError, format, args...)
}

func notImplementedf(format string, args ...interface{}) error {
	return newError(NotImplementedError, format, args...)
}

// KindOf returns the kind of a pipeline error. ok is false for errors that
// did not come out of the pipeline.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsNotImplemented reports whether err marks a grammar branch that is
// recognized but not implemented (function definitions).
func IsNotImplemented(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == NotImplementedError
}
