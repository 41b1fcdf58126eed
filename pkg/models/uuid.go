package models

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/gofrs/uuid"

	"github.com/wdetools/sqlgen/pkg/literal"
)

// UUID is a UUID rendered as its quoted canonical text.
//
// It implements cbor.Marshaler and cbor.Unmarshaler using tag 37.
type UUID struct {
	uuid.UUID
}

// ParseUUID parses the canonical or hash-like text form.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.FromString(s)
	if err != nil {
		return UUID{}, err
	}
	return UUID{u}, nil
}

// NewUUIDv7 returns a new time-ordered UUID.
func NewUUIDv7() (UUID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return UUID{}, err
	}
	return UUID{u}, nil
}

// MarshalCBOR implements cbor.Marshaler interface for UUID
func (u UUID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(cbor.Tag{
		Number:  TagSpecBinaryUUID,
		Content: u.Bytes(),
	})
}

// UnmarshalCBOR implements cbor.Unmarshaler interface for UUID
func (u *UUID) UnmarshalCBOR(data []byte) error {
	var tag cbor.Tag
	if err := cbor.Unmarshal(data, &tag); err != nil {
		return err
	}

	if tag.Number != TagSpecBinaryUUID {
		return fmt.Errorf("unexpected tag number for UUID: got %d, want %d", tag.Number, TagSpecBinaryUUID)
	}

	bytes, ok := tag.Content.([]byte)
	if !ok {
		return fmt.Errorf("UUID tag content must be byte string, got %T", tag.Content)
	}

	if len(bytes) != uuid.Size {
		return fmt.Errorf("UUID must be exactly %d bytes, got %d", uuid.Size, len(bytes))
	}

	parsed, err := uuid.FromBytes(bytes)
	if err != nil {
		return fmt.Errorf("failed to parse UUID bytes: %w", err)
	}

	u.UUID = parsed
	return nil
}

// SQLLiteral implements literal.Literaler.
func (u UUID) SQLLiteral() string {
	return literal.EscapeString(u.String())
}
