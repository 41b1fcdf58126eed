package models

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/wdetools/sqlgen/pkg/constants"
)

// CustomNil renders as NULL. Use the None value.
type CustomNil struct {
}

func (c CustomNil) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  TagNone,
		Content: nil,
	})
}

func (c *CustomNil) UnmarshalCBOR(data []byte) error {
	*c = CustomNil{}
	return nil
}

// SQLLiteral implements literal.Literaler.
func (CustomNil) SQLLiteral() string {
	return constants.Null
}

var None = CustomNil{}

// Decimal is an exact decimal number kept as text, e.g. "12.50".
// Text that is not a decimal number renders as the invalid-type marker.
type Decimal string

var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Valid reports whether d is a decimal number.
func (d Decimal) Valid() bool {
	return decimalPattern.MatchString(string(d))
}

// SQLLiteral implements literal.Literaler.
func (d Decimal) SQLLiteral() string {
	if !d.Valid() {
		return constants.InvalidType
	}
	return string(d)
}

const maxFractionExponent = 1000

// decimalFraction converts the content of a decimal fraction tag,
// [exponent, mantissa], into a Decimal.
func decimalFraction(content any) (Decimal, bool) {
	parts, ok := content.([]any)
	if !ok || len(parts) != 2 {
		return "", false
	}
	exp, ok := toBigInt(parts[0])
	if !ok || !exp.IsInt64() || exp.Int64() > maxFractionExponent || exp.Int64() < -maxFractionExponent {
		return "", false
	}
	mant, ok := toBigInt(parts[1])
	if !ok {
		return "", false
	}

	digits := new(big.Int).Abs(mant).String()
	sign := ""
	if mant.Sign() < 0 {
		sign = "-"
	}

	e := exp.Int64()
	switch {
	case e >= 0:
		return Decimal(sign + digits + strings.Repeat("0", int(e))), true
	case int64(len(digits)) > -e:
		point := len(digits) + int(e)
		return Decimal(sign + digits[:point] + "." + digits[point:]), true
	default:
		return Decimal(sign + "0." + strings.Repeat("0", int(-e)-len(digits)) + digits), true
	}
}

func toBigInt(v any) (*big.Int, bool) {
	switch x := v.(type) {
	case int64:
		return big.NewInt(x), true
	case uint64:
		return new(big.Int).SetUint64(x), true
	case big.Int:
		return &x, true
	case *big.Int:
		return x, x != nil
	}
	return nil, false
}

// Raw is an SQL expression written into statements verbatim, e.g. NOW().
// It is never escaped.
type Raw string

// SQLLiteral implements literal.Literaler.
func (r Raw) SQLLiteral() string {
	return string(r)
}
