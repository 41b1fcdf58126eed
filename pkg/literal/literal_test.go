package literal

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdetools/sqlgen/pkg/constants"
)

type level int

type label string

type literalValue struct{}

func (literalValue) SQLLiteral() string { return "NOW()" }

type stringerValue struct{ name string }

func (s stringerValue) String() string { return "@" + s.name }

func TestSerialize(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	seven := 7

	testcases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: "NULL"},
		{name: "nil pointer", value: nilPtr, want: "NULL"},
		{name: "pointer", value: &seven, want: "7"},
		{name: "true", value: true, want: "1"},
		{name: "false", value: false, want: "0"},
		{name: "int", value: 42, want: "42"},
		{name: "negative int64", value: int64(-9), want: "-9"},
		{name: "int8", value: int8(-8), want: "-8"},
		{name: "uint64 max", value: uint64(math.MaxUint64), want: "18446744073709551615"},
		{name: "named int", value: level(3), want: "3"},
		{name: "string", value: "hello", want: `"hello"`},
		{name: "named string", value: label("x\"y"), want: `"x\"y"`},
		{name: "float64", value: 1.5, want: "1.5"},
		{name: "float32", value: float32(0.1), want: "0.1"},
		{name: "large float", value: 1e20, want: "1e+20"},
		{name: "tiny float", value: 0.000001, want: "1e-06"},
		{name: "integral float", value: 1234567.0, want: "1234567"},
		{name: "time", value: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC), want: `"2024-02-03 04:05:06"`},
		{name: "time with micros", value: time.Date(2024, 2, 3, 4, 5, 6, 7000, time.UTC), want: `"2024-02-03 04:05:06.000007"`},
		{name: "literaler", value: literalValue{}, want: "NOW()"},
		{name: "stringer", value: stringerValue{name: "v"}, want: "@v"},
		{name: "map", value: map[string]int{"a": 1}, want: constants.InvalidType},
		{name: "slice", value: []int{1}, want: constants.InvalidType},
		{name: "struct", value: struct{ A int }{A: 1}, want: constants.InvalidType},
		{name: "NaN", value: math.NaN(), want: constants.InvalidType},
		{name: "Inf", value: math.Inf(-1), want: constants.InvalidType},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Serialize(tc.value))
		})
	}
}

func TestFormat_invalidType(t *testing.T) {
	t.Parallel()

	got, err := Format(map[string]any{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrInvalidScalarType))
	assert.Equal(t, constants.InvalidType, got)

	got, err = Format("ok")
	require.NoError(t, err)
	assert.Equal(t, `"ok"`, got)
}

func TestEscapeString(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		in   string
		want string
	}{
		{in: "", want: `""`},
		{in: `a"b`, want: `"a\"b"`},
		{in: `a\b`, want: `"a\\b"`},
		{in: `\"`, want: `"\\\""`},
		{in: "line1\r\nline2", want: `"line1\nline2"`},
		{in: "a\nb", want: `"a\nb"`},
		{in: "zażółć", want: `"zażółć"`},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.want, EscapeString(tc.in), "input %q", tc.in)
	}
}

// unescape reverses EscapeString, except for the dropped carriage returns.
func unescape(t *testing.T, quoted string) string {
	t.Helper()

	require.True(t, strings.HasPrefix(quoted, `"`) && strings.HasSuffix(quoted, `"`), "not quoted: %s", quoted)
	body := quoted[1 : len(quoted)-1]

	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case '"':
			t.Fatalf("unescaped quote at %d in %s", i, quoted)
		case '\\':
			i++
			require.Less(t, i, len(body), "dangling backslash in %s", quoted)
			switch body[i] {
			case '\\':
				b.WriteByte('\\')
			case '"':
				b.WriteByte('"')
			case 'n':
				b.WriteByte('\n')
			default:
				t.Fatalf("unknown escape \\%c in %s", body[i], quoted)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func TestEscapeString_roundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		`"quoted"`,
		`back\slash`,
		`\\"\"`,
		"multi\nline\n",
		"windows\r\nline",
		`ends with \`,
		"\"; DROP TABLE `users`; --",
		"tab\tand\x00nul",
	}

	for _, in := range inputs {
		want := strings.ReplaceAll(in, "\r", "")
		assert.Equal(t, want, unescape(t, EscapeString(in)), "input %q", in)
	}
}

func TestFormatFloat_localeInvariant(t *testing.T) {
	t.Parallel()

	values := []float64{
		0, -0.5, 1, 1.25, 1234.5678, 1234567.891, 999999999999999, 1e15, 1e21,
		-3.14159, 0.0001, 0.00001, 1e-7, math.MaxFloat64, math.SmallestNonzeroFloat64,
	}

	for _, v := range values {
		got := FormatFloat(v, 64)
		assert.NotContains(t, got, ",", "value %v", v)
		assert.NotContains(t, got, " ", "value %v", v)

		parsed, err := strconv.ParseFloat(got, 64)
		require.NoError(t, err)
		assert.Equal(t, v, parsed, "value %v rendered as %s", v, got)
	}
}

func TestIsNull(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	assert.True(t, IsNull(nil))
	assert.True(t, IsNull(nilPtr))
	assert.True(t, IsNull(nullLiteral{}))
	assert.False(t, IsNull(""))
	assert.False(t, IsNull(0))
	assert.False(t, IsNull(literalValue{}))
}

type nullLiteral struct{}

func (nullLiteral) SQLLiteral() string { return constants.Null }
