package models

import (
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/wdetools/sqlgen/pkg/constants"
	"github.com/wdetools/sqlgen/pkg/literal"
)

// DateTime is a point in time rendered as a MySQL DATETIME literal.
// The zero DateTime renders as NULL.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalCBOR() ([]byte, error) {
	if d.IsZero() {
		return cbor.Marshal(cbor.Tag{Number: TagNone})
	}

	totalNS := d.UnixNano()

	s := totalNS / constants.OneSecondToNanoSecond
	ns := totalNS % constants.OneSecondToNanoSecond

	return cbor.Marshal(cbor.Tag{
		Number:  TagCustomDatetime,
		Content: [2]int64{s, ns},
	})
}

func (d *DateTime) UnmarshalCBOR(data []byte) error {
	content, none, err := getTaggedContent(data, TagCustomDatetime)
	if err != nil {
		return err
	}
	if none {
		*d = DateTime{}
		return nil
	}

	s, ns, err := secondsNanos(content)
	if err != nil {
		return err
	}

	*d = DateTime{time.Unix(s, ns).UTC()}

	return nil
}

// String returns the DATETIME text without quotes.
func (d DateTime) String() string {
	if d.Nanosecond() == 0 {
		return d.Format(constants.DateTimeLayout)
	}
	return d.Format(constants.DateTimeMicroLayout)
}

// SQLLiteral implements literal.Literaler.
func (d DateTime) SQLLiteral() string {
	if d.IsZero() {
		return constants.Null
	}
	return literal.EscapeString(d.String())
}
