package eval

import (
	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/value"
)

// applyPrimitive dispatches a primitive-operator call (spec.md §4.3's App
// rule, §6's primitive table): only +, -, *, <=, > are implemented.
// Everything else in the seeded operator set (# @ == /= % ^ / < >=) is
// reserved and yields UnknownPrimitive (spec.md §6).
func applyPrimitive(call ast.Expr, name string, args []value.Value) (value.Value, error) {
	switch name {
	case "+":
		var sum uint32
		for _, a := range args {
			n, err := expectU32(call, a)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		return value.U32(sum), nil

	case "-":
		if len(args) != 2 {
			return nil, errArityMismatch(call, 2, len(args))
		}
		a, err := expectU32(call, args[0])
		if err != nil {
			return nil, err
		}
		b, err := expectU32(call, args[1])
		if err != nil {
			return nil, err
		}
		return value.U32(a - b), nil // wraps on underflow (spec.md §9)

	case "*":
		if len(args) != 2 {
			return nil, errArityMismatch(call, 2, len(args))
		}
		a, err := expectU32(call, args[0])
		if err != nil {
			return nil, err
		}
		b, err := expectU32(call, args[1])
		if err != nil {
			return nil, err
		}
		return value.U32(a * b), nil

	case "<=":
		if len(args) != 2 {
			return nil, errArityMismatch(call, 2, len(args))
		}
		a, err := expectU32(call, args[0])
		if err != nil {
			return nil, err
		}
		b, err := expectU32(call, args[1])
		if err != nil {
			return nil, err
		}
		return value.Bool(a <= b), nil

	case ">":
		if len(args) != 2 {
			return nil, errArityMismatch(call, 2, len(args))
		}
		a, err := expectU32(call, args[0])
		if err != nil {
			return nil, err
		}
		b, err := expectU32(call, args[1])
		if err != nil {
			return nil, err
		}
		return value.Bool(a > b), nil

	default:
		return nil, errUnknownPrimitive(call, name)
	}
}
