package morte

import (
	"reflect"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func mustParse(t *testing.T, src string) Expr {
	t.Helper()
	e, err := Parse(src)
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	return e
}

func mustType(t *testing.T, ctx Context, e Expr) Expr {
	t.Helper()
	ty, err := TypeWith(ctx, e)
	if err != nil {
		t.Fatalf("type error for %v: %v", e, err)
	}
	return ty
}

func wantExpr(t *testing.T, got, want Expr) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func wantEq(t *testing.T, l, r Expr) {
	t.Helper()
	if !Eq(l, r) {
		t.Fatalf("want %v == %v", l, r)
	}
}

func wantNotEq(t *testing.T, l, r Expr) {
	t.Helper()
	if Eq(l, r) {
		t.Fatalf("want %v != %v", l, r)
	}
}
