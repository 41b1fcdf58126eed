package models

import (
	"math/big"
	"reflect"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// CBOR tag numbers of the scalar models.
const (
	TagNone            uint64 = 6
	TagDecimalString   uint64 = 10
	TagCustomDatetime  uint64 = 12
	TagDurationCompact uint64 = 14
	TagSpecBinaryUUID  uint64 = 37

	// TagDecimalFraction is the standard [exponent, mantissa] decimal.
	TagDecimalFraction uint64 = 4
)

func registerCborTags() cbor.TagSet {
	tags := cbor.NewTagSet()

	// Types with their own MarshalCBOR write the tag themselves.
	decodeOnly := map[uint64]any{
		TagNone:            CustomNil{},
		TagCustomDatetime:  DateTime{},
		TagDurationCompact: Duration{},
		TagSpecBinaryUUID:  UUID{},
	}
	for tag, customType := range decodeOnly {
		err := tags.Add(
			cbor.TagOptions{EncTag: cbor.EncTagNone, DecTag: cbor.DecTagRequired},
			reflect.TypeOf(customType),
			tag,
		)
		if err != nil {
			panic(err)
		}
	}

	err := tags.Add(
		cbor.TagOptions{EncTag: cbor.EncTagRequired, DecTag: cbor.DecTagRequired},
		reflect.TypeOf(Decimal("")),
		TagDecimalString,
	)
	if err != nil {
		panic(err)
	}

	return tags
}

var (
	cborTags    = registerCborTags()
	cborEncMode = newCborEncMode()
	cborDecMode = newCborDecMode()
)

func newCborEncMode() cbor.EncMode {
	em, err := cbor.EncOptions{
		Time:    cbor.TimeRFC3339Nano,
		TimeTag: cbor.EncTagRequired,
	}.EncModeWithTags(cborTags)
	if err != nil {
		panic(err)
	}

	return em
}

func newCborDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		TimeTagToAny:   cbor.TimeTagToTime,
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecModeWithTags(cborTags)
	if err != nil {
		panic(err)
	}

	return dm
}

// EncMode returns the CBOR encoding mode that knows the model tags.
func EncMode() cbor.EncMode {
	return cborEncMode
}

// DecMode returns the CBOR decoding mode that knows the model tags.
// Maps decode as map[string]any.
func DecMode() cbor.DecMode {
	return cborDecMode
}

// FromCBOR converts a value decoded into any by DecMode into a value the
// literal serializer understands. Values it does not know are returned as they
// are.
func FromCBOR(v any) any {
	switch x := v.(type) {
	case time.Time:
		return DateTime{Time: x}
	case big.Int:
		return Decimal(x.String())
	case *big.Int:
		if x == nil {
			return nil
		}
		return Decimal(x.String())
	case cbor.Tag:
		if x.Number == TagDecimalFraction {
			if d, ok := decimalFraction(x.Content); ok {
				return d
			}
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = FromCBOR(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = FromCBOR(e)
		}
		return out
	}
	return v
}
