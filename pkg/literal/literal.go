// Package literal renders Go values as SQL literal text.
//
// The rendering is the one MySQL-compatible servers accept in INSERT and UPDATE
// statements: strings are double-quoted with backslash escapes, booleans are 1/0,
// floating-point numbers never depend on the host locale, and NULL stands for
// absent values.
//
// Values with no SQL representation are replaced by the [constants.InvalidType]
// marker instead of failing, so a single bad cell never discards a whole batch.
// [Format] reports those values with an error wrapping
// [constants.ErrInvalidScalarType] for callers that want to know.
package literal

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/wdetools/sqlgen/pkg/constants"
)

// Literaler is implemented by values that know their own SQL literal text.
//
// The returned text is emitted verbatim, without escaping.
type Literaler interface {
	SQLLiteral() string
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r", "",
	"\n", `\n`,
)

// EscapeString quotes s as a SQL string literal.
//
// Backslashes and double quotes are escaped, carriage returns are dropped and
// line feeds become the two characters `\n`.
func EscapeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	// single pass: replaced text is never rescanned
	_, _ = escaper.WriteString(&b, s)
	b.WriteByte('"')
	return b.String()
}

// FormatFloat renders f with '.' as the decimal separator and no grouping.
//
// Values in [1e-5, 1e15) use plain decimal notation, everything else uses
// exponent notation. The shortest text that round-trips at bitSize is used.
func FormatFloat(f float64, bitSize int) string {
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-5 && abs < 1e15) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize)
}

// Serialize returns the SQL literal for v.
//
// It never fails: values without a literal render as [constants.InvalidType].
func Serialize(v any) string {
	s, _ := Format(v)
	return s
}

// Format returns the SQL literal for v, or the invalid-type marker together with
// an error wrapping [constants.ErrInvalidScalarType].
func Format(v any) (string, error) {
	if isNil(v) {
		return constants.Null, nil
	}

	switch x := v.(type) {
	case Literaler:
		return x.SQLLiteral(), nil
	case string:
		return EscapeString(x), nil
	case bool:
		return formatBool(x), nil
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case time.Time:
		return formatTime(x), nil
	case fmt.Stringer:
		return x.String(), nil
	}

	return formatReflect(reflect.ValueOf(v))
}

func formatReflect(rv reflect.Value) (string, error) {
	switch rv.Kind() {
	case reflect.Pointer:
		return Format(rv.Elem().Interface())
	case reflect.String:
		return EscapeString(rv.String()), nil
	case reflect.Bool:
		return formatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	}

	return constants.InvalidType, fmt.Errorf("%w: %s", constants.ErrInvalidScalarType, rv.Type())
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// IsNull reports whether v renders as NULL.
func IsNull(v any) bool {
	if isNil(v) {
		return true
	}
	l, ok := v.(Literaler)
	return ok && l.SQLLiteral() == constants.Null
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatFloat(f float64, bitSize int) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return constants.InvalidType, fmt.Errorf("%w: non-finite float %v", constants.ErrInvalidScalarType, f)
	}
	return FormatFloat(f, bitSize), nil
}

func formatTime(t time.Time) string {
	if t.Nanosecond() == 0 {
		return EscapeString(t.Format(constants.DateTimeLayout))
	}
	return EscapeString(t.Format(constants.DateTimeMicroLayout))
}
