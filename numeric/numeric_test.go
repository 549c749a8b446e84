package numeric_test

import (
	"math/big"
	"testing"

	"github.com/db47h/lispcore/alloc"
	"github.com/db47h/lispcore/numeric"
	"github.com/db47h/lispcore/value"
)

func mustInt(t *testing.T, v value.Value, err error) int64 {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := v.(value.Int)
	if !ok {
		t.Fatalf("want Int, got %T (%v)", v, v)
	}
	return int64(i)
}

// S1
func TestSumIntegers(t *testing.T) {
	v, err := numeric.Sum(alloc.Default, []value.Value{value.Int(1), value.Int(2), value.Int(3)})
	if got := mustInt(t, v, err); got != 6 {
		t.Errorf("(+ 1 2 3) = %d, want 6", got)
	}
}

// S2 overflow fallback to float
func TestOverflowFallsBackToFloat(t *testing.T) {
	v, err := numeric.Add(alloc.Default, value.Int(9223372036854775806), value.Int(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := v.(value.Float)
	if !ok {
		t.Fatalf("want Float on overflow, got %T", v)
	}
	want := float64(9223372036854775806) + float64(2)
	if float64(f) != want {
		t.Errorf("(+ 9223372036854775806 2) = %v, want %v", float64(f), want)
	}
}

// S3 sticky big_int promotion
func TestBigIntStaysPromoted(t *testing.T) {
	big50 := new(big.Int)
	big50.Exp(big.NewInt(10), big.NewInt(50), nil)
	v, err := numeric.Mul(alloc.Default, value.NewBigInt(big50), value.Int(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bi, ok := v.(value.BigInt)
	if !ok {
		t.Fatalf("want BigInt, got %T", v)
	}
	want := new(big.Int).Mul(big50, big.NewInt(2))
	if bi.Int().Cmp(want) != 0 {
		t.Errorf("(* bigint(10^50) 2) = %v, want %v", bi.Int(), want)
	}
}

// S4 scale preservation
func TestDecimalAddPreservesScale(t *testing.T) {
	a := value.NewBigDecimal(big.NewInt(150), 2) // 1.50
	b := value.NewBigDecimal(big.NewInt(225), 2) // 2.25
	v, err := numeric.Add(alloc.Default, a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bd, ok := v.(value.BigDecimal)
	if !ok {
		t.Fatalf("want BigDecimal, got %T", v)
	}
	if bd.Unscaled().Int64() != 375 || bd.Scale() != 2 {
		t.Errorf("(+ 1.50M 2.25M) = (%v, scale %d), want (375, 2)", bd.Unscaled(), bd.Scale())
	}
}

func TestDecimalMulSumsScale(t *testing.T) {
	a := value.NewBigDecimal(big.NewInt(15), 1)  // 1.5
	b := value.NewBigDecimal(big.NewInt(225), 2) // 2.25
	v, err := numeric.Mul(alloc.Default, a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bd := v.(value.BigDecimal)
	if bd.Scale() != 3 {
		t.Errorf("scale = %d, want 3", bd.Scale())
	}
}

// S5 zero division
func TestDivideByZero(t *testing.T) {
	_, err := numeric.Div(alloc.Default, value.Int(10), value.Int(0))
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if got, want := err.Error(), "arithmetic_error: Divide by zero"; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}

func TestNaNPropagates(t *testing.T) {
	v, err := numeric.Div(alloc.Default, value.Float(0), value.Float(0))
	if err != nil {
		t.Fatalf("(/ 0.0 0.0) returned error %v, want NaN", err)
	}
	f := float64(v.(value.Float))
	if f == f { // f != f iff NaN
		t.Errorf("(/ 0.0 0.0) = %v, want NaN", f)
	}
}

// S6 monotone chain
func TestLessChain(t *testing.T) {
	cases := []struct {
		xs   []value.Value
		want bool
	}{
		{[]value.Value{value.Int(1), value.Int(2), value.Int(2)}, false},
		{[]value.Value{value.Int(1), value.Int(2), value.Int(3)}, true},
	}
	for _, c := range cases {
		v, err := numeric.Less(alloc.Default, c.xs)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if bool(v.(value.Bool)) != c.want {
			t.Errorf("Less(%v) = %v, want %v", c.xs, v, c.want)
		}
	}
}

func TestLessEqualChain(t *testing.T) {
	v, err := numeric.LessEqual(alloc.Default, []value.Value{value.Int(1), value.Int(2), value.Int(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bool(v.(value.Bool)) {
		t.Errorf("(<= 1 2 2) = false, want true")
	}
}

// S7
func TestCrossTagEqualityAsymmetry(t *testing.T) {
	v, err := numeric.EqualFold([]value.Value{value.Int(1), value.Float(1.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bool(v.(value.Bool)) {
		t.Errorf("(= 1 1.0) = true, want false")
	}
}

// S8
func TestModAndRem(t *testing.T) {
	m, err := numeric.Mod(alloc.Default, value.Int(-7), value.Int(3))
	if got := mustInt(t, m, err); got != 2 {
		t.Errorf("(mod -7 3) = %d, want 2", got)
	}
	r, err := numeric.Rem(alloc.Default, value.Int(-7), value.Int(3))
	if got := mustInt(t, r, err); got != -1 {
		t.Errorf("(rem -7 3) = %d, want -1", got)
	}
}

func TestLeftAssociativity(t *testing.T) {
	xs := []value.Value{value.Int(10), value.Int(2), value.Int(3)}
	v, err := numeric.Difference(alloc.Default, xs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (10 - 2) - 3 = 5, not 10 - (2 - 3) = 11.
	if got := mustInt(t, v, nil); got != 5 {
		t.Errorf("(- 10 2 3) = %d, want 5", got)
	}
}

func TestIdentityFolds(t *testing.T) {
	zero, _ := numeric.Sum(alloc.Default, nil)
	if mustInt(t, zero, nil) != 0 {
		t.Errorf("(+) != 0")
	}
	one, _ := numeric.Product(alloc.Default, nil)
	if mustInt(t, one, nil) != 1 {
		t.Errorf("(*) != 1")
	}
	x, _ := numeric.Sum(alloc.Default, []value.Value{value.Int(5)})
	if mustInt(t, x, nil) != 5 {
		t.Errorf("(+ 5) != 5")
	}
	neg, _ := numeric.Difference(alloc.Default, []value.Value{value.Int(5)})
	if mustInt(t, neg, nil) != -5 {
		t.Errorf("(- 5) != -5")
	}
}

func TestDivideByZeroAllNumericTags(t *testing.T) {
	big3 := value.NewBigInt(big.NewInt(3))
	bigZero := value.NewBigInt(big.NewInt(0))
	dec := value.NewBigDecimal(big.NewInt(150), 2)
	decZero := value.NewBigDecimal(big.NewInt(0), 0)

	for _, c := range []struct {
		name string
		a, b value.Value
	}{
		{"int/int", value.Int(1), value.Int(0)},
		{"float/float", value.Float(1), value.Float(0)},
		{"bigint/bigint", big3, bigZero},
		{"bigint/int", big3, value.Int(0)},
		{"decimal/decimal", dec, decZero},
	} {
		if _, err := numeric.Div(alloc.Default, c.a, c.b); err == nil {
			t.Errorf("%s: want error, got nil", c.name)
		}
	}
}

func TestTypeErrorOnNonNumeric(t *testing.T) {
	_, err := numeric.Add(alloc.Default, value.Int(1), value.Str("x"))
	if err == nil {
		t.Fatal("want error, got nil")
	}
}
