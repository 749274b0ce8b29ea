package surface

import (
	"encoding/json"
	"fmt"
)

// wireExpr is the JSON-on-the-wire shape `tlrun eval`/`tlrun repl` read:
// a tagged union discriminated by "node", standing in for the AST a real
// concrete-syntax parser (out of scope for this module, spec.md §1) would
// hand off to the desugarer. Grounded on internal/iface/json.go's
// tag-discriminated encoding style from the teacher, adapted to this
// smaller surface grammar.
type wireExpr struct {
	Node string `json:"node"`

	// Lit
	IsBool bool   `json:"is_bool,omitempty"`
	Bool   bool   `json:"bool,omitempty"`
	N      uint32 `json:"n,omitempty"`

	// Op / Ident / BaseAbs / ValueAbs param
	Name string `json:"name,omitempty"`

	// Seq / App
	Exprs []wireExpr `json:"exprs,omitempty"`

	// TupleBuilder
	Pairs []wireTuplePair `json:"pairs,omitempty"`

	// If
	Cond *wireExpr `json:"cond,omitempty"`
	Then *wireExpr `json:"then,omitempty"`
	Else *wireExpr `json:"else,omitempty"`

	// WhereVar
	Binds []wireBind `json:"binds,omitempty"`

	// Query / Perturb / BaseAbs / ValueAbs / BaseApp / ValueApp / IntensionApp
	LHS  *wireExpr `json:"lhs,omitempty"`
	RHS  *wireExpr `json:"rhs,omitempty"`
	Arg  *wireExpr `json:"arg,omitempty"`
	Body *wireExpr `json:"body,omitempty"`
	Expr *wireExpr `json:"expr,omitempty"`

	// FunctionDecl / FunctionApplication
	ID          string      `json:"id,omitempty"`
	BaseParams  []string    `json:"base_params,omitempty"`
	ValueParams []string    `json:"value_params,omitempty"`
	NameParams  []string    `json:"name_params,omitempty"`
	BaseArgs    []wireExpr  `json:"base_args,omitempty"`
	ValueArgs   []wireExpr  `json:"value_args,omitempty"`
	NameArgs    []wireExpr  `json:"name_args,omitempty"`

	// IntensionBuilder
	Domain []wireExpr `json:"domain,omitempty"`
	Value  *wireExpr  `json:"value,omitempty"`

	// WhereDim
	DimBinds []wireDimBind `json:"dim_binds,omitempty"`
}

type wireTuplePair struct {
	LHS wireExpr `json:"lhs"`
	RHS wireExpr `json:"rhs"`
}

type wireBind struct {
	ID  string   `json:"id"`
	RHS wireExpr `json:"rhs"`
}

type wireDimBind struct {
	ID  string   `json:"id"`
	RHS wireExpr `json:"rhs"`
}

// ParseJSON decodes the wire format described above into an Expr tree.
func ParseJSON(data []byte) (Expr, error) {
	var w wireExpr
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("surface: invalid JSON: %w", err)
	}
	return fromWire(w)
}

func fromWire(w wireExpr) (Expr, error) {
	switch w.Node {
	case "lit":
		if w.IsBool {
			return NewBoolLit(w.Bool), nil
		}
		return NewU32Lit(w.N), nil
	case "op":
		return NewOp(w.Name), nil
	case "ident":
		return NewIdent(w.Name), nil
	case "seq":
		exprs, err := fromWireSlice(w.Exprs)
		if err != nil {
			return nil, err
		}
		return NewSeq(exprs), nil
	case "tuple":
		pairs := make([]TuplePair, len(w.Pairs))
		for i, p := range w.Pairs {
			lhs, err := fromWire(p.LHS)
			if err != nil {
				return nil, err
			}
			rhs, err := fromWire(p.RHS)
			if err != nil {
				return nil, err
			}
			pairs[i] = TuplePair{LHS: lhs, RHS: rhs}
		}
		return NewTupleBuilder(pairs), nil
	case "app":
		exprs, err := fromWireSlice(w.Exprs)
		if err != nil {
			return nil, err
		}
		return NewApp(exprs), nil
	case "if":
		cond, err := fromWire(*w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := fromWire(*w.Then)
		if err != nil {
			return nil, err
		}
		els, err := fromWire(*w.Else)
		if err != nil {
			return nil, err
		}
		return NewIf(cond, then, els), nil
	case "wherevar":
		lhs, err := fromWire(*w.LHS)
		if err != nil {
			return nil, err
		}
		binds := make([]WhereVarBinding, len(w.Binds))
		for i, b := range w.Binds {
			rhs, err := fromWire(b.RHS)
			if err != nil {
				return nil, err
			}
			binds[i] = WhereVarBinding{ID: b.ID, RHS: rhs}
		}
		return NewWhereVar(lhs, binds), nil
	case "query":
		e, err := fromWire(*w.Expr)
		if err != nil {
			return nil, err
		}
		return NewQuery(e), nil
	case "perturb":
		lhs, err := fromWire(*w.LHS)
		if err != nil {
			return nil, err
		}
		rhs, err := fromWire(*w.RHS)
		if err != nil {
			return nil, err
		}
		return NewPerturb(lhs, rhs), nil
	case "base_abs":
		body, err := fromWire(*w.Body)
		if err != nil {
			return nil, err
		}
		return NewBaseAbs(w.Name, body), nil
	case "value_abs":
		body, err := fromWire(*w.Body)
		if err != nil {
			return nil, err
		}
		return NewValueAbs(w.Name, body), nil
	case "base_app":
		lhs, err := fromWire(*w.LHS)
		if err != nil {
			return nil, err
		}
		arg, err := fromWire(*w.Arg)
		if err != nil {
			return nil, err
		}
		return NewBaseApp(lhs, arg), nil
	case "value_app":
		lhs, err := fromWire(*w.LHS)
		if err != nil {
			return nil, err
		}
		arg, err := fromWire(*w.Arg)
		if err != nil {
			return nil, err
		}
		return NewValueApp(lhs, arg), nil
	case "fun_decl":
		body, err := fromWire(*w.Body)
		if err != nil {
			return nil, err
		}
		return NewFunctionDecl(w.BaseParams, w.ValueParams, w.NameParams, body), nil
	case "fun_app":
		baseArgs, err := fromWireSlice(w.BaseArgs)
		if err != nil {
			return nil, err
		}
		valueArgs, err := fromWireSlice(w.ValueArgs)
		if err != nil {
			return nil, err
		}
		nameArgs, err := fromWireSlice(w.NameArgs)
		if err != nil {
			return nil, err
		}
		return NewFunctionApplication(w.ID, baseArgs, valueArgs, nameArgs), nil
	case "intension_builder":
		domain, err := fromWireSlice(w.Domain)
		if err != nil {
			return nil, err
		}
		value, err := fromWire(*w.Value)
		if err != nil {
			return nil, err
		}
		return NewIntensionBuilder(domain, value), nil
	case "intension_app":
		e, err := fromWire(*w.Expr)
		if err != nil {
			return nil, err
		}
		return NewIntensionApp(e), nil
	case "wheredim":
		lhs, err := fromWire(*w.LHS)
		if err != nil {
			return nil, err
		}
		binds := make([]DimBinding, len(w.DimBinds))
		for i, b := range w.DimBinds {
			rhs, err := fromWire(b.RHS)
			if err != nil {
				return nil, err
			}
			binds[i] = DimBinding{ID: b.ID, RHS: rhs}
		}
		return NewWhereDim(lhs, binds), nil
	default:
		return nil, fmt.Errorf("surface: unknown node kind %q", w.Node)
	}
}

func fromWireSlice(ws []wireExpr) ([]Expr, error) {
	out := make([]Expr, len(ws))
	for i, w := range ws {
		e, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
