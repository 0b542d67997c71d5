package decimal_test

import (
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/decimal"
)

func TestRoot(t *testing.T) {
	type TC struct {
		Input  string
		Degree int64
		Digits int64
		Output string
		Mark   error
	}

	tcs := []TC{
		{
			Input:  "4",
			Degree: 2,
			Digits: 3,
			Output: "2.000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "2",
			Degree: 2,
			Digits: 20,
			Output: "1.41421356237309504880",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "27",
			Degree: 3,
			Digits: 5,
			Output: "3.00000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "-8",
			Degree: 3,
			Digits: 2,
			Output: "-2.00",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0.25",
			Degree: 2,
			Digits: 4,
			Output: "0.5000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "2.5",
			Degree: 1,
			Digits: 3,
			Output: "2.500",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0",
			Degree: 2,
			Digits: 3,
			Output: "0.000",
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "32",
			Degree: 5,
			Digits: 6,
			Output: "2.000000",
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		got, err := decimal.MustParse(tc.Input).Root(tc.Degree, tc.Digits)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Output, got.String(), tc.Mark)
		require.Equal(t, tc.Digits, got.Scale(), tc.Mark)
	}
}

func TestRootBeyondFloatRange(t *testing.T) {
	// The float seed overflows here; the magnitude estimate takes
	// over and Newton still lands exactly.
	got, err := decimal.Pow10(400).Sqrt(5)
	require.NoError(t, err)
	require.True(t, got.Eq(decimal.Pow10(200)))

	got, err = decimal.Pow10(-400).Sqrt(205)
	require.NoError(t, err)
	require.True(t, got.Eq(decimal.Pow10(-200)))
}

func TestRootErrors(t *testing.T) {
	_, err := decimal.FromInt64(4).Root(0, 5)
	require.ErrorIs(t, err, decimal.ErrInvalidRootDegree)

	_, err = decimal.FromInt64(4).Root(-2, 5)
	require.ErrorIs(t, err, decimal.ErrInvalidRootDegree)

	_, err = decimal.FromInt64(-16).Root(2, 8)
	require.ErrorIs(t, err, decimal.ErrEvenRootOfNegative)

	_, err = decimal.FromInt64(-4).Sqrt(5)
	require.ErrorIs(t, err, decimal.ErrEvenRootOfNegative)
}

func TestSqrt(t *testing.T) {
	got, err := decimal.MustParse("2.25").Sqrt(4)
	require.NoError(t, err)
	require.Equal(t, "1.5000", got.String())
}

func TestRootPowInverse(t *testing.T) {
	bases := []string{"2.5", "7", "0.3"}
	degrees := []int64{2, 3, 5}
	p := int64(12)
	tol := decimal.Pow10(-(p - 4))

	for _, base := range bases {
		b := decimal.MustParse(base)
		for _, degree := range degrees {
			r, err := b.Root(degree, p+30)
			require.NoError(t, err)

			back, err := r.Pow(decimal.FromInt64(degree), p+30)
			require.NoError(t, err)

			ok, err := back.Round(p).IsCloseTo(b.Round(p), tol)
			require.NoError(t, err)
			if !ok {
				t.Logf("%s root %d -> %s -> %s", base, degree, r, back)
			}
			require.True(t, ok, oops.New("unexpected"))
		}
	}
}
