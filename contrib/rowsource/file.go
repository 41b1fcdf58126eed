package rowsource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/wdetools/sqlgen/pkg/constants"
)

// Format is a row file encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatCBOR    Format = "cbor"
	FormatMsgpack Format = "msgpack"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cbor":
		return FormatCBOR, nil
	case ".msgpack", ".mpk":
		return FormatMsgpack, nil
	}
	return "", fmt.Errorf("%w: %s", constants.ErrUnknownFormat, path)
}

// Decode decodes data in format f.
func Decode(f Format, data []byte) (*Document, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	case FormatCBOR:
		return DecodeCBOR(data)
	case FormatMsgpack:
		return DecodeMsgpack(data)
	}
	return nil, fmt.Errorf("%w: %q", constants.ErrUnknownFormat, string(f))
}

// ReadFile reads and decodes the row file at path.
//
// charset names the encoding of text formats, e.g. "windows-1252" or
// "iso-8859-2". Empty means UTF-8. Binary formats ignore it.
func ReadFile(path, charset string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if charset != "" && (f == FormatJSON || f == FormatYAML) {
		data, err = toUTF8(data, charset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	doc, err := Decode(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func toUTF8(data []byte, charset string) ([]byte, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", charset, err)
	}
	return enc.NewDecoder().Bytes(data)
}
