package morte

import (
	"strconv"
	"strings"
)

// The printer has three precedence levels: binders and arrows at the
// top, application below, and atoms at the bottom. Anything rendered
// below its natural level is parenthesized.

func (c Const) String() string {
	if c == Star {
		return "*"
	}
	return "□"
}

func (v Var) String() string {
	if v.Index == 0 {
		return v.Name
	}
	return v.Name + "@" + strconv.Itoa(v.Index)
}

func (l Lam) String() string { return render(l) }
func (p Pi) String() string  { return render(p) }
func (a App) String() string { return render(a) }

func render(e Expr) string {
	var b strings.Builder
	buildExpr(&b, e)
	return b.String()
}

func buildExpr(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Lam:
		b.WriteString("λ(")
		b.WriteString(e.Name)
		b.WriteString(" : ")
		buildExpr(b, e.Type)
		b.WriteString(") → ")
		buildExpr(b, e.Body)
	case Pi:
		if Used(e.Name, e.Body) {
			b.WriteString("∀(")
			b.WriteString(e.Name)
			b.WriteString(" : ")
			buildExpr(b, e.Type)
			b.WriteString(") → ")
			buildExpr(b, e.Body)
		} else {
			buildApp(b, e.Type)
			b.WriteString(" → ")
			buildExpr(b, e.Body)
		}
	default:
		buildApp(b, e)
	}
}

func buildApp(b *strings.Builder, e Expr) {
	if e, ok := e.(App); ok {
		buildApp(b, e.Fn)
		b.WriteByte(' ')
		buildAtom(b, e.Arg)
		return
	}
	buildAtom(b, e)
}

func buildAtom(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case Const:
		b.WriteString(e.String())
	case Var:
		b.WriteString(e.String())
	default:
		b.WriteByte('(')
		buildExpr(b, e)
		b.WriteByte(')')
	}
}
