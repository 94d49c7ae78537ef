package morte

// substTop performs the beta step (λ(x : A) → b) a: the argument is
// shifted over x, substituted at index 0, and the leftover index is
// shifted back out.
func substTop(x string, a, b Expr) Expr {
	return Shift(-1, x, Subst(x, 0, Shift(1, x, a), b))
}

// Whnf reduces e to weak-head normal form: the head is beta-reduced
// until it is no longer an application of a lambda. Nothing under a
// binder or in argument position is touched.
func Whnf(e Expr) Expr {
	if app, ok := e.(App); ok {
		if lam, ok := Whnf(app.Fn).(Lam); ok {
			return Whnf(substTop(lam.Name, app.Arg, lam.Body))
		}
	}
	return e
}

// Normalize reduces e to its normal form in normal order, performing
// beta and eta reduction everywhere. On well-typed terms the result is
// unique and Normalize terminates; on ill-typed terms it may diverge.
func Normalize(e Expr) Expr {
	switch e := e.(type) {
	case Const, Var:
		return e
	case Lam:
		body := Normalize(e.Body)
		// λ(x : A) → f x reduces to f when x is not free in f.
		if app, ok := body.(App); ok {
			if v, ok := app.Arg.(Var); ok && v == (Var{e.Name, 0}) && !FreeIn(v, app.Fn) {
				return Shift(-1, e.Name, app.Fn)
			}
		}
		return Lam{e.Name, Normalize(e.Type), body}
	case Pi:
		return Pi{e.Name, Normalize(e.Type), Normalize(e.Body)}
	case App:
		f := Normalize(e.Fn)
		if lam, ok := f.(Lam); ok {
			return Normalize(substTop(lam.Name, e.Arg, lam.Body))
		}
		return App{f, Normalize(e.Arg)}
	}
	panic("unreachable")
}
