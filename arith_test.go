package decimal_test

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal"
)

func TestAddSub(t *testing.T) {
	type TC struct {
		A    string
		B    string
		Sum  string
		Diff string
		Mark error
	}

	tcs := []TC{
		{
			A:    "1.5",
			B:    "2.25",
			Sum:  "3.75",
			Diff: "-0.75",
			Mark: oops.New("unexpected"),
		},
		{
			A:    "0.1",
			B:    "0.2",
			Sum:  "0.3",
			Diff: "-0.1",
			Mark: oops.New("unexpected"),
		},
		{
			A:    "100",
			B:    "0.001",
			Sum:  "100.001",
			Diff: "99.999",
			Mark: oops.New("unexpected"),
		},
		{
			A:    "-1.5",
			B:    "1.5",
			Sum:  "0.0",
			Diff: "-3.0",
			Mark: oops.New("unexpected"),
		},
		{
			A:    "1500",
			B:    "1.5e3",
			Sum:  "3000",
			Diff: "0",
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		a := decimal.MustParse(tc.A)
		b := decimal.MustParse(tc.B)
		require.Equal(t, tc.Sum, a.Add(b).String(), tc.Mark)
		require.Equal(t, tc.Diff, a.Sub(b).String(), tc.Mark)

		// Addition is exact, so it inverts exactly.
		require.True(t, a.Add(b).SubMut(b).Eq(a), tc.Mark)
		require.True(t, a.Sub(b).AddMut(b).Eq(a), tc.Mark)
	}
}

func TestMul(t *testing.T) {
	type TC struct {
		A      string
		B      string
		Output string
		Mark   error
	}

	tcs := []TC{
		{
			A:      "12.345",
			B:      "3",
			Output: "37.035",
			Mark:   oops.New("unexpected"),
		},
		{
			A:      "0.1",
			B:      "0.1",
			Output: "0.01",
			Mark:   oops.New("unexpected"),
		},
		{
			A:      "-2.5",
			B:      "4",
			Output: "-10.0",
			Mark:   oops.New("unexpected"),
		},
		{
			A:      "0",
			B:      "123.45",
			Output: "0.00",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		got := decimal.MustParse(tc.A).Mul(decimal.MustParse(tc.B))
		require.Equal(t, tc.Output, got.String(), tc.Mark)
	}
}

func TestCmp(t *testing.T) {
	type TC struct {
		A    string
		B    string
		Cmp  int
		Mark error
	}

	tcs := []TC{
		{
			A:    "1.00",
			B:    "1",
			Cmp:  0,
			Mark: oops.New("unexpected"),
		},
		{
			A:    "1.5",
			B:    "1.49",
			Cmp:  1,
			Mark: oops.New("unexpected"),
		},
		{
			A:    "-1.5",
			B:    "-1.49",
			Cmp:  -1,
			Mark: oops.New("unexpected"),
		},
		{
			A:    "0.000",
			B:    "0",
			Cmp:  0,
			Mark: oops.New("unexpected"),
		},
		{
			A:    "1500",
			B:    "1.5e3",
			Cmp:  0,
			Mark: oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		a := decimal.MustParse(tc.A)
		b := decimal.MustParse(tc.B)

		require.Equal(t, tc.Cmp, a.Cmp(b), tc.Mark)
		require.Equal(t, -tc.Cmp, b.Cmp(a), tc.Mark)

		require.Equal(t, tc.Cmp == 0, a.Eq(b), tc.Mark)
		require.Equal(t, tc.Cmp != 0, a.Neq(b), tc.Mark)
		require.Equal(t, tc.Cmp < 0, a.Lt(b), tc.Mark)
		require.Equal(t, tc.Cmp > 0, a.Gt(b), tc.Mark)
		require.Equal(t, tc.Cmp <= 0, a.Le(b), tc.Mark)
		require.Equal(t, tc.Cmp >= 0, a.Ge(b), tc.Mark)
	}
}

func TestNegAbs(t *testing.T) {
	d := decimal.MustParse("-1.5")
	require.Equal(t, "1.5", d.Neg().String())
	require.Equal(t, "1.5", d.Abs().String())
	require.Equal(t, "-1.5", d.String())
	require.Equal(t, "1.5", decimal.MustParse("1.5").Abs().String())
	require.Equal(t, "0", decimal.FromInt64(0).Neg().String())
}

func TestShift10(t *testing.T) {
	type TC struct {
		Input  string
		N      int64
		Output string
		Mark   error
	}

	tcs := []TC{
		{
			Input:  "12.345",
			N:      2,
			Output: "1234.5",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "12.345",
			N:      -2,
			Output: "0.12345",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "12.345",
			N:      5,
			Output: "1234500",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "12.345",
			N:      0,
			Output: "12.345",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		got := decimal.MustParse(tc.Input).Shift10(tc.N)
		require.Equal(t, tc.Output, got.String(), tc.Mark)
	}
}

func TestBetween(t *testing.T) {
	lo := decimal.FromInt64(0)
	hi := decimal.FromInt64(10)

	for _, tc := range []struct {
		Value string
		Want  bool
	}{
		{"5", true},
		{"0", true},
		{"10", true},
		{"10.00", true},
		{"-0.001", false},
		{"10.001", false},
	} {
		got, err := decimal.MustParse(tc.Value).Between(lo, hi)
		require.NoError(t, err)
		require.Equal(t, tc.Want, got, oops.New("unexpected"))
	}

	_, err := decimal.FromInt64(5).Between(hi, lo)
	require.ErrorIs(t, err, decimal.ErrInvalidRange)
}

func TestIsCloseTo(t *testing.T) {
	a := decimal.MustParse("1.0001")
	b := decimal.FromInt64(1)

	got, err := a.IsCloseTo(b, decimal.MustParse("0.001"))
	require.NoError(t, err)
	require.True(t, got)

	got, err = a.IsCloseTo(b, decimal.MustParse("0.0001"))
	require.NoError(t, err)
	require.True(t, got)

	got, err = a.IsCloseTo(b, decimal.MustParse("0.00009"))
	require.NoError(t, err)
	require.False(t, got)

	_, err = a.IsCloseTo(b, decimal.MustParse("-0.001"))
	require.ErrorIs(t, err, decimal.ErrNegativeTolerance)
}

func TestClamp(t *testing.T) {
	lo := decimal.FromInt64(0)
	hi := decimal.FromInt64(10)

	type TC struct {
		Value  string
		Lo     *decimal.Decimal
		Hi     *decimal.Decimal
		Output string
		Mark   error
	}

	tcs := []TC{
		{
			Value:  "5",
			Lo:     lo,
			Hi:     hi,
			Output: "5",
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  "-3",
			Lo:     lo,
			Hi:     hi,
			Output: "0",
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  "12.5",
			Lo:     lo,
			Hi:     hi,
			Output: "10",
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  "-3",
			Lo:     nil,
			Hi:     hi,
			Output: "-3",
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  "12.5",
			Lo:     lo,
			Hi:     nil,
			Output: "12.5",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		got, err := decimal.MustParse(tc.Value).Clamp(tc.Lo, tc.Hi)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Output, got.String(), tc.Mark)
	}

	// A clamped result is a copy of the bound, not the bound itself.
	got, err := decimal.MustParse("-3").Clamp(lo, hi)
	require.NoError(t, err)
	got.AddMut(decimal.FromInt64(1))
	require.Equal(t, "0", lo.String())

	_, err = decimal.FromInt64(5).Clamp(hi, lo)
	require.ErrorIs(t, err, decimal.ErrInvalidRange)
}
