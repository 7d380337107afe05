package pluralexpr_test

import (
	"math"
	"testing"

	"github.com/romshark/poreader/internal/pluralexpr"

	"github.com/stretchr/testify/require"
)

type expect struct {
	index int
	ok    bool
}

// indexes maps a quantity to the expected plural form index,
// with ok=false for quantities that select no form.
type indexes map[int64]expect

func form(i int) expect { return expect{index: i, ok: true} }

func none() expect { return expect{} }

func TestParseAndIndex(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		source  string
		wantErr bool
		indexes indexes
	}{
		{
			name:    "empty string",
			source:  "",
			indexes: indexes{100: form(100)},
		},
		{
			name:    "variable",
			source:  "n",
			indexes: indexes{100: form(100)},
		},
		{
			name:    "constant",
			source:  "100",
			indexes: indexes{0: form(100), 5: form(100), 100: form(100)},
		},
		{
			name:    "zero",
			source:  "0",
			indexes: indexes{0: form(0), 5: form(0), 100: form(0)},
		},
		{
			name:    "unrecognized word",
			source:  "azerty",
			wantErr: true,
		},
		{
			name:    "operator add",
			source:  "n + 10",
			indexes: indexes{100: form(110)},
		},
		{
			name:    "operator add missing operand",
			source:  "n + ",
			wantErr: true,
		},
		{
			name:    "operator sub",
			source:  "n - 10",
			indexes: indexes{5: none(), 10: form(0), 100: form(90)},
		},
		{
			name:    "operator mul",
			source:  "n * 10",
			indexes: indexes{0: form(0), 5: form(50)},
		},
		{
			name:    "operator div",
			source:  "n / 10",
			indexes: indexes{0: form(0), 20: form(2), 35: form(3)},
		},
		{
			name:    "operator mod",
			source:  "n % 10",
			indexes: indexes{0: form(0), 23: form(3), 35: form(5)},
		},
		{
			name:    "operator eq",
			source:  "n == 10",
			indexes: indexes{100: form(0), 10: form(1)},
		},
		{
			name:    "operator ne",
			source:  "n != 10",
			indexes: indexes{2: form(1), 100: form(1), 10: form(0)},
		},
		{
			name:    "operator lt",
			source:  "n < 10",
			indexes: indexes{2: form(1), 100: form(0), 10: form(0)},
		},
		{
			name:    "operator lte",
			source:  "n <= 10",
			indexes: indexes{2: form(1), 100: form(0), 10: form(1)},
		},
		{
			name:    "operator gt",
			source:  "n > 10",
			indexes: indexes{2: form(0), 100: form(1), 10: form(0)},
		},
		{
			name:    "operator gte",
			source:  "n >= 10",
			indexes: indexes{2: form(0), 100: form(1), 10: form(1)},
		},
		{
			name:    "operator not",
			source:  "!n",
			indexes: indexes{100: form(0), 0: form(1)},
		},
		{
			name:    "operator neg",
			source:  "-n",
			indexes: indexes{100: none(), 0: form(0)},
		},
		{
			name:    "operator and",
			source:  "(5 < n) && n <= 25",
			indexes: indexes{100: form(0), 0: form(0), 5: form(0), 10: form(1), 25: form(1)},
		},
		{
			name:    "operator or",
			source:  "(5 >= n) || n > 25",
			indexes: indexes{100: form(1), 0: form(1), 5: form(1), 10: form(0), 25: form(0)},
		},
		{
			name:    "word alias or",
			source:  "(5 >= n) or n > 25",
			indexes: indexes{100: form(1), 0: form(1), 10: form(0)},
		},
		{
			name:    "no word alias for and",
			source:  "n > 5 and n < 25",
			wantErr: true,
		},
		{
			name:    "conditional",
			source:  "n < 10 ? 1 : 2",
			indexes: indexes{100: form(2), 0: form(1), 10: form(2)},
		},
		{
			name:   "big expression",
			source: "n > 10 ? (n % 10) == 3 ? 10 : n < 100 ? 20 : (!(n > 200) ? -n + 1000 : 1234) : n - 10",
			indexes: indexes{
				0:   none(),
				10:  form(0),
				43:  form(10),
				53:  form(10),
				55:  form(20),
				44:  form(20),
				441: form(1234),
				404: form(1234),
				150: form(850),
				156: form(844),
				200: form(800),
			},
		},
		{
			name:    "big expression unbalanced paren",
			source:  "n > 10 ? (n % 10) == 3 ? 10 : (n < 100 ? 20 : (!(n > 200) ? -n + 1000 : 1234) : n - 10",
			wantErr: true,
		},
		{
			name:    "conditional missing colon",
			source:  "n < 10 ? 1",
			wantErr: true,
		},
		{
			name:    "lone pipe",
			source:  "n | 1",
			wantErr: true,
		},
		{
			name:    "lone ampersand",
			source:  "n & 1",
			wantErr: true,
		},
		{
			name:    "lone equals",
			source:  "n = 1",
			wantErr: true,
		},
		{
			name:    "unknown character",
			source:  "n @ 1",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			source:  "n + 1 )",
			wantErr: true,
		},
		{
			name:    "integer overflow literal",
			source:  "9223372036854775808",
			wantErr: true,
		},
		{
			name:    "slavic three forms",
			source:  "n%10==1 && n%100!=11 ? 0 : n%10>=2 && n%10<=4 && (n%100<10 || n%100>=20) ? 1 : 2",
			indexes: indexes{1: form(0), 21: form(0), 2: form(1), 24: form(1), 5: form(2), 11: form(2), 112: form(2)},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := pluralexpr.Parse(tt.source)
			if tt.wantErr {
				require.Error(t, err)
				var perr *pluralexpr.ParseError
				require.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			for n, want := range tt.indexes {
				index, ok := f.Index(n)
				require.Equal(t, want.ok, ok, "quantity %d", n)
				if want.ok {
					require.Equal(t, want.index, index, "quantity %d", n)
				}
			}
		})
	}
}

func TestEvalTotality(t *testing.T) {
	t.Parallel()

	eval := func(t *testing.T, source string, n int64) int64 {
		t.Helper()
		f, err := pluralexpr.Parse(source)
		require.NoError(t, err)
		return f.Eval(n)
	}

	t.Run("division by zero saturates", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(math.MaxInt64), eval(t, "1000 / n", 0))
		require.Equal(t, int64(math.MinInt64), eval(t, "-1000 / n", 0))
		require.Equal(t, int64(math.MaxInt64), eval(t, "0 / n", 0))
	})

	t.Run("remainder by zero returns dividend", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(1000), eval(t, "1000 % n", 0))
		require.Equal(t, int64(-7), eval(t, "-7 % n", 0))
	})

	t.Run("addition wraps", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(math.MinInt64), eval(t, "n + 1", math.MaxInt64))
	})

	t.Run("subtraction wraps", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(math.MaxInt64), eval(t, "n - 1", math.MinInt64))
	})

	t.Run("negation wraps", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(math.MinInt64), eval(t, "-n", math.MinInt64))
	})

	t.Run("minimum divided by minus one wraps", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(math.MinInt64), eval(t, "n / -1", math.MinInt64))
	})

	t.Run("minimum remainder minus one is zero", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(0), eval(t, "n % -1", math.MinInt64))
	})

	t.Run("conditional evaluates taken branch only", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, int64(42), eval(t, "n == 0 ? 42 : 1000 / n", 0))
	})
}

func TestZeroValueIsIdentity(t *testing.T) {
	t.Parallel()
	var f pluralexpr.Formula
	require.Equal(t, int64(7), f.Eval(7))
	index, ok := f.Index(-1)
	require.False(t, ok)
	require.Zero(t, index)
}

func TestParseErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := pluralexpr.Parse("n ? 1")
	require.Error(t, err)
	var perr *pluralexpr.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "", perr.Got)
	require.Contains(t, err.Error(), "unexpected end of expression")

	_, err = pluralexpr.Parse("n + %")
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "%", perr.Got)
	require.Equal(t, 4, perr.Offset)
}
