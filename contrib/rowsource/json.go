package rowsource

import (
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"

	"github.com/wdetools/sqlgen/pkg/models"
)

// DecodeJSON decodes a JSON document. Object key order is kept.
func DecodeJSON(data []byte) (*Document, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("invalid JSON document")
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}

	root, err := fromJSON(value, dataType)
	if err != nil {
		return nil, err
	}
	return buildDocument(root, true)
}

func fromJSON(value []byte, dataType jsonparser.ValueType) (*node, error) {
	switch dataType {
	case jsonparser.Object:
		n := &node{kind: kindObject}
		err := jsonparser.ObjectEach(value, func(key []byte, v []byte, t jsonparser.ValueType, _ int) error {
			k, err := jsonparser.ParseString(key)
			if err != nil {
				return err
			}
			item, err := fromJSON(v, t)
			if err != nil {
				return err
			}
			n.keys = append(n.keys, k)
			n.items = append(n.items, item)
			return nil
		})
		return n, err
	case jsonparser.Array:
		n := &node{kind: kindArray}
		var itemErr error
		_, err := jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, _ error) {
			if itemErr != nil {
				return
			}
			var item *node
			item, itemErr = fromJSON(v, t)
			n.items = append(n.items, item)
		})
		if err != nil {
			return nil, err
		}
		return n, itemErr
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, err
		}
		return scalarNode(s), nil
	case jsonparser.Number:
		return scalarNode(jsonNumber(string(value))), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, err
		}
		return scalarNode(b), nil
	case jsonparser.Null:
		return scalarNode(nil), nil
	}
	return nil, fmt.Errorf("unexpected JSON value %q", value)
}

// jsonNumber keeps integers exact: they become int64 or uint64, and integers
// too large for both become a Decimal.
func jsonNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	if isInteger(s) {
		return models.Decimal(s)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return models.Decimal(s)
}

func isInteger(s string) bool {
	if s != "" && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
