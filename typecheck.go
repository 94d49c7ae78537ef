package morte

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Binding associates a bound name with its type.
type Binding struct {
	Name string
	Type Expr
}

// Context is the ordered sequence of bindings in scope, innermost
// first. The same name may appear more than once; Var{x, n} resolves
// to the n-th occurrence of x counting from the head.
type Context []Binding

// Insert enters a binder of name x with domain a: every existing
// binding's type is shifted over x and the new pair goes on the front.
// The domain itself is not shifted, it lives under the outer context.
func (ctx Context) Insert(x string, a Expr) Context {
	shifted := lo.Map(ctx, func(b Binding, _ int) Binding {
		return Binding{b.Name, Shift(1, x, b.Type)}
	})
	return append(Context{{x, a}}, shifted...)
}

// Lookup resolves the n-th binding of name x, scanning from the head.
func (ctx Context) Lookup(x string, n int) (Expr, bool) {
	for _, b := range ctx {
		if b.Name == x {
			if n == 0 {
				return b.Type, true
			}
			n--
		}
	}
	return nil, false
}

// TypeMessage is the reason a term failed to type check.
type TypeMessage interface {
	isTypeMessage()
	String() string
}

type UnboundVariable struct{}

func (UnboundVariable) isTypeMessage() {}
func (UnboundVariable) String() string { return "unbound variable" }

// InvalidInputType reports a Pi whose domain is not classified by a
// sort.
type InvalidInputType struct {
	Type Expr
}

func (InvalidInputType) isTypeMessage() {}
func (m InvalidInputType) String() string {
	return "invalid input type: " + m.Type.String()
}

// InvalidOutputType reports a Pi whose codomain is not classified by a
// sort.
type InvalidOutputType struct {
	Type Expr
}

func (InvalidOutputType) isTypeMessage() {}
func (m InvalidOutputType) String() string {
	return "invalid output type: " + m.Type.String()
}

type NotAFunction struct{}

func (NotAFunction) isTypeMessage() {}
func (NotAFunction) String() string { return "not a function" }

// TypeMismatch reports an application whose argument type differs from
// the function's domain. Both sides are in normal form.
type TypeMismatch struct {
	Expected Expr
	Actual   Expr
}

func (TypeMismatch) isTypeMessage() {}
func (m TypeMismatch) String() string {
	return fmt.Sprintf("type mismatch: expected %v, got %v", m.Expected, m.Actual)
}

// Untyped reports the sort that has no type. Only Box triggers it.
type Untyped struct {
	Const Const
}

func (Untyped) isTypeMessage() {}
func (m Untyped) String() string {
	return m.Const.String() + " has no type"
}

// TypeError is the value returned for every checking failure. It
// carries the context prevailing at the failure site, the narrowest
// offending sub-expression, and the tagged message.
type TypeError struct {
	Context Context
	Expr    Expr
	Message TypeMessage
}

func (e *TypeError) Error() string {
	var b strings.Builder
	b.WriteString("Context:\n")
	for _, line := range lo.Map(e.Context, func(bd Binding, _ int) string {
		return bd.Name + " : " + bd.Type.String()
	}) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\nExpression: ")
	b.WriteString(e.Expr.String())
	b.WriteString("\n\nError: ")
	b.WriteString(e.Message.String())
	return b.String()
}

// axiom types a sort: Star lives in Box, Box lives in nothing.
func axiom(c Const) (Const, bool) {
	if c == Star {
		return Box, true
	}
	return 0, false
}

// rule gives the sort of ∀(x : A) → B from the sorts of A and B. All
// four pairs are permitted; the function space lives where its output
// lives.
func rule(s, t Const) Const {
	switch {
	case s == Star && t == Star:
		return Star
	case s == Star && t == Box:
		return Box
	case s == Box && t == Star:
		return Star
	default:
		return Box
	}
}

// TypeWith type checks e under ctx and returns its type. Failures come
// back as a *TypeError; the checker never panics on closed-shape input.
func TypeWith(ctx Context, e Expr) (Expr, error) {
	switch e := e.(type) {
	case Const:
		c, ok := axiom(e)
		if !ok {
			return nil, &TypeError{ctx, e, Untyped{e}}
		}
		return c, nil
	case Var:
		t, ok := ctx.Lookup(e.Name, e.Index)
		if !ok {
			return nil, &TypeError{ctx, e, UnboundVariable{}}
		}
		return t, nil
	case Lam:
		ctx1 := ctx.Insert(e.Name, e.Type)
		b, err := TypeWith(ctx1, e.Body)
		if err != nil {
			return nil, err
		}
		p := Pi{e.Name, e.Type, b}
		// The synthesized Pi must itself be well formed; its type is
		// discarded.
		if _, err := TypeWith(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	case Pi:
		a, err := TypeWith(ctx, e.Type)
		if err != nil {
			return nil, err
		}
		s, ok := Whnf(a).(Const)
		if !ok {
			return nil, &TypeError{ctx, e, InvalidInputType{e.Type}}
		}
		ctx1 := ctx.Insert(e.Name, e.Type)
		b, err := TypeWith(ctx1, e.Body)
		if err != nil {
			return nil, err
		}
		t, ok := Whnf(b).(Const)
		if !ok {
			return nil, &TypeError{ctx1, e, InvalidOutputType{e.Body}}
		}
		return rule(s, t), nil
	case App:
		f, err := TypeWith(ctx, e.Fn)
		if err != nil {
			return nil, err
		}
		p, ok := Whnf(f).(Pi)
		if !ok {
			return nil, &TypeError{ctx, e, NotAFunction{}}
		}
		a, err := TypeWith(ctx, e.Arg)
		if err != nil {
			return nil, err
		}
		if !Eq(p.Type, a) {
			return nil, &TypeError{ctx, e, TypeMismatch{Normalize(p.Type), Normalize(a)}}
		}
		return substTop(p.Name, e.Arg, p.Body), nil
	}
	panic("unreachable")
}

// TypeOf type checks a closed term.
func TypeOf(e Expr) (Expr, error) {
	return TypeWith(nil, e)
}
