package models

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/wdetools/sqlgen/pkg/constants"
	"github.com/wdetools/sqlgen/pkg/literal"
)

// Duration is a time span rendered as a MySQL TIME literal, "HH:MM:SS" with
// microseconds when present. Hours are not wrapped at 24.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalCBOR() ([]byte, error) {
	totalNS := d.Nanoseconds()
	s := totalNS / constants.OneSecondToNanoSecond
	ns := totalNS % constants.OneSecondToNanoSecond

	return cbor.Marshal(cbor.Tag{
		Number:  TagDurationCompact,
		Content: [2]int64{s, ns},
	})
}

func (d *Duration) UnmarshalCBOR(data []byte) error {
	content, none, err := getTaggedContent(data, TagDurationCompact)
	if err != nil {
		return err
	}
	if none {
		*d = Duration{}
		return nil
	}

	s, ns, err := secondsNanos(content)
	if err != nil {
		return err
	}

	*d = Duration{time.Duration(s)*time.Second + time.Duration(ns)}

	return nil
}

// String returns the TIME text without quotes.
func (d Duration) String() string {
	v := d.Duration
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	h := v / time.Hour
	m := (v % time.Hour) / time.Minute
	s := (v % time.Minute) / time.Second
	us := (v % time.Second) / time.Microsecond

	if us == 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d.%06d", sign, h, m, s, us)
}

// SQLLiteral implements literal.Literaler.
func (d Duration) SQLLiteral() string {
	return literal.EscapeString(d.String())
}
