// Package driver wires the desugarer and evaluator together into the
// single entry point a caller actually invokes (spec.md §4.5): seed the
// environment with primitive operators, desugar the surface tree,
// push the quantifier domain into the context, and run the evaluator.
// Grounded on original_source/src/lib.rs's evaluate.
package driver

import (
	"fmt"
	"io"

	"github.com/translucid-lang/tlcore/internal/ast"
	"github.com/translucid-lang/tlcore/internal/cache"
	"github.com/translucid-lang/tlcore/internal/desugar"
	"github.com/translucid-lang/tlcore/internal/domain"
	"github.com/translucid-lang/tlcore/internal/errors"
	"github.com/translucid-lang/tlcore/internal/eval"
	"github.com/translucid-lang/tlcore/internal/surface"
	"github.com/translucid-lang/tlcore/internal/value"
)

// Quirks toggles the two source quirks spec.md §9 documents: by
// default both are preserved bit-for-bit, matching original behaviour.
type Quirks struct {
	LTMapsToGTE bool // `<` desugars to the `>=` primitive
	NEMapsToMod bool // `/=` desugars to the `%` primitive
}

// DefaultQuirks preserves both quirks, matching the source exactly.
func DefaultQuirks() Quirks { return Quirks{LTMapsToGTE: true, NEMapsToMod: true} }

// Driver holds the configuration a single Run call needs.
type Driver struct {
	Quirks Quirks
	Trace  io.Writer // when non-nil, Run writes the seeded K and D before evaluating; eval_id_fix iterations are not traced
}

// New returns a Driver with default quirks and no tracing.
func New() *Driver {
	return &Driver{Quirks: DefaultQuirks()}
}

// operatorTable is the seeded primitive-operator vocabulary (spec.md
// §4.5 step 2). `<` and `/=` are listed for completeness but, per the
// quirk, resolve through seedOperators to the same Op node as `>=` and
// `%` respectively unless a Driver disables that quirk.
var operatorTable = []string{"#", "@", "==", "/=", "%", "^", "/", "*", "+", "-", "<", "<=", ">", ">="}

// seedOperators defines every primitive operator token in E, applying
// the `<` -> `>=` and `/=` -> `%` quirk mappings unless disabled.
func (drv *Driver) seedOperators(E *ast.Environment) {
	for _, name := range operatorTable {
		mapped := name
		switch name {
		case "<":
			if drv.Quirks.LTMapsToGTE {
				mapped = ">="
			}
		case "/=":
			if drv.Quirks.NEMapsToMod {
				mapped = "%"
			}
		}
		E.Define(name, ast.NewOp(mapped))
	}
}

// Run desugars expr, seeds the environment and context, and evaluates
// it to completion (spec.md §4.5).
func (drv *Driver) Run(expr surface.Expr) (eval.Result, error) {
	l0, q, err := desugar.Transform(expr)
	if err != nil {
		return eval.Result{}, err
	}

	E := ast.NewEnvironment()
	drv.seedOperators(E)

	K := value.NewContext()
	D := domain.New()
	for _, d := range q.ToSlice() {
		K = K.Push(d, value.U32(0))
		D.Push(d)
	}

	if drv.Trace != nil {
		fmt.Fprintf(drv.Trace, "K :: %s\n", K.String())
		fmt.Fprintf(drv.Trace, "D :: %s\n", D.String())
	}

	C := cache.New()
	return eval.Eval(l0, E, K, D, D, C)
}

// ExpectValue unwraps r, failing with EVL006 ExpectedValue if it is a
// Right(Domain) (spec.md §6's `expect_value` helper).
func ExpectValue(r eval.Result) (value.Value, error) {
	v, missing, isRight := r.Unpack()
	if isRight {
		return nil, errors.WrapReport(errors.New(errors.EVL006,
			fmt.Sprintf("evaluation did not resolve to a value: missing dimensions %s", missing.String()),
			nil, nil))
	}
	return v, nil
}
