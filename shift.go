package morte

// Shift adds d to the index of every free occurrence of the variable
// named x in e. An occurrence is free when its index is at least the
// number of binders of that name between it and the root.
func Shift(d int, x string, e Expr) Expr {
	return shift(d, 0, x, e)
}

func shift(d, c int, x string, e Expr) Expr {
	switch e := e.(type) {
	case Const:
		return e
	case Var:
		if e.Name == x && e.Index >= c {
			return Var{e.Name, e.Index + d}
		}
		return e
	case Lam:
		c1 := c
		if e.Name == x {
			c1++
		}
		return Lam{e.Name, shift(d, c, x, e.Type), shift(d, c1, x, e.Body)}
	case Pi:
		c1 := c
		if e.Name == x {
			c1++
		}
		return Pi{e.Name, shift(d, c, x, e.Type), shift(d, c1, x, e.Body)}
	case App:
		return App{shift(d, c, x, e.Fn), shift(d, c, x, e.Arg)}
	}
	panic("unreachable")
}

// Subst replaces every free occurrence of Var{x, n} in e with r,
// avoiding capture: under a binder of the same name the sought index
// is raised by one, and under any binder r is shifted over the bound
// name so its free variables keep referring past it.
func Subst(x string, n int, r, e Expr) Expr {
	switch e := e.(type) {
	case Const:
		return e
	case Var:
		if e.Name == x && e.Index == n {
			return r
		}
		return e
	case Lam:
		n1 := n
		if e.Name == x {
			n1++
		}
		return Lam{e.Name, Subst(x, n, r, e.Type), Subst(x, n1, Shift(1, e.Name, r), e.Body)}
	case Pi:
		n1 := n
		if e.Name == x {
			n1++
		}
		return Pi{e.Name, Subst(x, n, r, e.Type), Subst(x, n1, Shift(1, e.Name, r), e.Body)}
	case App:
		return App{Subst(x, n, r, e.Fn), Subst(x, n, r, e.Arg)}
	}
	panic("unreachable")
}

// Used reports whether any variable named x occurs free in e at any
// index. The printer calls this to decide between ∀(x : A) → B and
// A → B.
func Used(x string, e Expr) bool {
	return used(x, 0, e)
}

func used(x string, c int, e Expr) bool {
	switch e := e.(type) {
	case Const:
		return false
	case Var:
		return e.Name == x && e.Index >= c
	case Lam:
		c1 := c
		if e.Name == x {
			c1++
		}
		return used(x, c, e.Type) || used(x, c1, e.Body)
	case Pi:
		c1 := c
		if e.Name == x {
			c1++
		}
		return used(x, c, e.Type) || used(x, c1, e.Body)
	case App:
		return used(x, c, e.Fn) || used(x, c, e.Arg)
	}
	panic("unreachable")
}

// FreeIn reports whether v occurs free in e.
func FreeIn(v Var, e Expr) bool {
	switch e := e.(type) {
	case Const:
		return false
	case Var:
		return e == v
	case Lam:
		if FreeIn(v, e.Type) {
			return true
		}
		v1 := v
		if e.Name == v.Name {
			v1.Index++
		}
		return FreeIn(v1, e.Body)
	case Pi:
		if FreeIn(v, e.Type) {
			return true
		}
		v1 := v
		if e.Name == v.Name {
			v1.Index++
		}
		return FreeIn(v1, e.Body)
	case App:
		return FreeIn(v, e.Fn) || FreeIn(v, e.Arg)
	}
	panic("unreachable")
}
