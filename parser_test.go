package morte

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want Expr
	}{
		{"*", Const(Star)},
		{"□", Const(Box)},
		{"BOX", Const(Box)},
		{"x", Var{"x", 0}},
		{"x@2", Var{"x", 2}},
		{"x @ 2", Var{"x", 2}},
		{"λ(x : a) → x", Lam{"x", Var{"a", 0}, Var{"x", 0}}},
		{`\(x : a) -> x`, Lam{"x", Var{"a", 0}, Var{"x", 0}}},
		{"∀(a : *) → a", Pi{"a", Const(Star), Var{"a", 0}}},
		{"forall (a : *) -> a", Pi{"a", Const(Star), Var{"a", 0}}},
		{"a → b", Pi{"_", Var{"a", 0}, Var{"b", 0}}},
		{"a → b → c", Pi{"_", Var{"a", 0}, Pi{"_", Var{"b", 0}, Var{"c", 0}}}},
		{"f a b", App{App{Var{"f", 0}, Var{"a", 0}}, Var{"b", 0}}},
		{"f (a b)", App{Var{"f", 0}, App{Var{"a", 0}, Var{"b", 0}}}},
		{"(x)", Var{"x", 0}},
		{"f x -- applied\n", App{Var{"f", 0}, Var{"x", 0}}},
		{"-- a comment\nx", Var{"x", 0}},
	}
	for _, tt := range tests {
		wantExpr(t, mustParse(t, tt.src), tt.want)
	}
}

func TestParseBinderSugar(t *testing.T) {
	// A non-dependent domain written with the arrow is the same Pi the
	// printer will fold back into an arrow.
	e := mustParse(t, "λ(s : n → n) → s")
	wantExpr(t, e, Lam{"s", Pi{"_", Var{"n", 0}, Var{"n", 0}}, Var{"s", 0}})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src     string
		wantSub string
	}{
		{"", "EOF"},
		{"(x", `expected token ")"`},
		{")", "unexpected token"},
		{"λ x", `expected token "("`},
		{"λ(x a) → x", `expected token ":"`},
		{"λ(x : a) x", `expected token "→"`},
		{"x@", "EOF"},
		{"x@y", "expected index"},
		{"x@-1", "unexpected token"},
		{"f →", "EOF"},
		{"x y)", "unexpected token"},
		{"λ(λ : *) → *", "expected identifier"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.src)
		if err == nil {
			t.Errorf("Parse(%q): want error, got none", tt.src)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantSub) {
			t.Errorf("Parse(%q): error %q does not mention %q", tt.src, err, tt.wantSub)
		}
	}
}

func TestParsePrintRoundTrip(t *testing.T) {
	for _, src := range []string{
		"λ(a : *) → λ(x : a) → x",
		"λ(n : *) → λ(s : n → n) → λ(z : n) → s (s z)",
		"∀(a : *) → (a → a) → a → a",
		"(λ(x : a) → x) y",
		"f (g x) y",
		"x@2 x@1 x",
		"λ(x : ∀(a : *) → a → a) → x",
	} {
		e := mustParse(t, src)
		wantExpr(t, mustParse(t, e.String()), e)
	}
}
