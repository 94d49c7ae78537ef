package morte

// binderPair records a left and right binder entered in parallel while
// walking two terms for alpha equivalence.
type binderPair struct {
	l, r string
}

// Eq reports whether l and r have alpha-equivalent normal forms.
func Eq(l, r Expr) bool {
	return alphaEq(Normalize(l), Normalize(r), nil)
}

func alphaEq(l, r Expr, env []binderPair) bool {
	switch l := l.(type) {
	case Const:
		rc, ok := r.(Const)
		return ok && l == rc
	case Var:
		rv, ok := r.(Var)
		return ok && matchVar(l, rv, env)
	case Lam:
		rl, ok := r.(Lam)
		if !ok {
			return false
		}
		return alphaEq(l.Type, rl.Type, env) &&
			alphaEq(l.Body, rl.Body, push(l.Name, rl.Name, env))
	case Pi:
		rp, ok := r.(Pi)
		if !ok {
			return false
		}
		return alphaEq(l.Type, rp.Type, env) &&
			alphaEq(l.Body, rp.Body, push(l.Name, rp.Name, env))
	case App:
		ra, ok := r.(App)
		if !ok {
			return false
		}
		return alphaEq(l.Fn, ra.Fn, env) && alphaEq(l.Arg, ra.Arg, env)
	}
	panic("unreachable")
}

func push(l, r string, env []binderPair) []binderPair {
	return append([]binderPair{{l, r}}, env...)
}

// matchVar resolves two variables against the stack of binders entered
// so far, innermost first. Each side counts down its own index past
// same-named binders; the variables agree when both counts reach zero
// at the same pair and that pair carries both names; a variable whose
// count reaches zero at a pair it names on one side only is bound there
// and differs from the other. Variables free of the whole stack must
// agree on name and index.
func matchVar(l, r Var, env []binderPair) bool {
	nL, nR := l.Index, r.Index
	for _, p := range env {
		boundL := nL == 0 && l.Name == p.l
		boundR := nR == 0 && r.Name == p.r
		if boundL || boundR {
			return boundL && boundR
		}
		if l.Name == p.l {
			nL--
		}
		if r.Name == p.r {
			nR--
		}
	}
	return l.Name == r.Name && nL == nR
}
