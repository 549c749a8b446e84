package value_test

import (
	"math/big"
	"testing"

	"github.com/db47h/lispcore/value"
)

func TestEqualExactCrossTag(t *testing.T) {
	i := value.Int(2)
	bi := value.BigIntFromInt64(2)
	bd := value.NewBigDecimal(big.NewInt(200), 2) // 2.00
	if !value.Equal(i, bi) {
		t.Errorf("Int(2) != BigInt(2)")
	}
	if !value.Equal(i, bd) {
		t.Errorf("Int(2) != BigDecimal(2.00)")
	}
	if !value.Equal(bi, bd) {
		t.Errorf("BigInt(2) != BigDecimal(2.00)")
	}
}

func TestEqualFloatNeverCrossesTag(t *testing.T) {
	if value.Equal(value.Int(1), value.Float(1.0)) {
		t.Errorf("Int(1) == Float(1.0), want false (S7)")
	}
	if !value.Equal(value.Float(1.0), value.Float(1.0)) {
		t.Errorf("Float(1.0) != Float(1.0)")
	}
}

func TestBigDecimalString(t *testing.T) {
	cases := []struct {
		unscaled int64
		scale    int32
		want     string
	}{
		{375, 2, "3.75"},
		{5, 0, "5"},
		{5, 3, "0.005"},
		{-125, 2, "-1.25"},
		{5, -2, "500"},
	}
	for _, c := range cases {
		bd := value.NewBigDecimal(big.NewInt(c.unscaled), c.scale)
		if got := bd.String(); got != c.want {
			t.Errorf("BigDecimal(%d, %d).String() = %q, want %q", c.unscaled, c.scale, got, c.want)
		}
	}
}

func TestListEquality(t *testing.T) {
	a := value.List{Items: []value.Value{value.Int(1), value.Int(2)}}
	b := value.List{Items: []value.Value{value.Int(1), value.Int(2)}}
	c := value.List{Items: []value.Value{value.Int(1), value.Int(3)}}
	if !value.Equal(a, b) {
		t.Errorf("equal lists compared unequal")
	}
	if value.Equal(a, c) {
		t.Errorf("unequal lists compared equal")
	}
}
