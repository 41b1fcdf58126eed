package models

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// getTaggedContent returns the encoded content of a tag, or reports whether
// data is the None tag.
func getTaggedContent(data []byte, tagNumber uint64) (content []byte, none bool, err error) {
	var tag cbor.RawTag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return nil, false, err
	}

	if tag.Number == TagNone {
		return nil, true, nil
	}

	if tag.Number != tagNumber {
		return nil, false, fmt.Errorf("unexpected tag number: got %d, want %d", tag.Number, tagNumber)
	}

	// RawMessage.MarshalCBOR returns the raw bytes without re-encoding.
	contentData, err := tag.Content.MarshalCBOR()
	if err != nil {
		return nil, false, fmt.Errorf("failed to extract the raw bytes from cbor tag content: %w", err)
	}

	return contentData, false, nil
}

// secondsNanos splits a [seconds, nanoseconds] pair.
func secondsNanos(content []byte) (int64, int64, error) {
	var pair []int64
	if err := cbor.Unmarshal(content, &pair); err != nil {
		return 0, 0, err
	}

	switch len(pair) {
	case 0:
		return 0, 0, nil
	case 1:
		return pair[0], 0, nil
	case 2:
		return pair[0], pair[1], nil
	}
	return 0, 0, fmt.Errorf("expected [seconds, nanoseconds], got %d elements", len(pair))
}
