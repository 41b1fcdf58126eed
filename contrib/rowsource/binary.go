package rowsource

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/wdetools/sqlgen/pkg/models"
)

// DecodeCBOR decodes a CBOR document. Model tags such as UUIDs, decimals and
// date-times become their models types.
func DecodeCBOR(data []byte) (*Document, error) {
	var v any
	if err := models.DecMode().Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return buildDocument(fromAny(models.FromCBOR(v)), false)
}

// DecodeMsgpack decodes a MessagePack document.
func DecodeMsgpack(data []byte) (*Document, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return buildDocument(fromAny(v), false)
}
