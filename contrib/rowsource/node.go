package rowsource

import (
	"sort"
	"time"

	"github.com/wdetools/sqlgen/pkg/models"
)

type nodeKind int

const (
	kindScalar nodeKind = iota
	kindObject
	kindArray
)

// node is a decoded document value. Objects keep their keys in order.
type node struct {
	kind   nodeKind
	scalar any
	keys   []string
	items  []*node
}

func scalarNode(v any) *node {
	if t, ok := v.(time.Time); ok {
		v = models.DateTime{Time: t}
	}
	return &node{kind: kindScalar, scalar: v}
}

// get returns the value of key, or nil.
func (n *node) get(key string) *node {
	if n == nil || n.kind != kindObject {
		return nil
	}
	for i, k := range n.keys {
		if k == key {
			return n.items[i]
		}
	}
	return nil
}

func (n *node) str() (string, bool) {
	if n == nil || n.kind != kindScalar {
		return "", false
	}
	s, ok := n.scalar.(string)
	return s, ok
}

func (n *node) boolean() (bool, bool) {
	if n == nil || n.kind != kindScalar {
		return false, false
	}
	b, ok := n.scalar.(bool)
	return b, ok
}

func (n *node) toAny() any {
	switch n.kind {
	case kindObject:
		m := make(map[string]any, len(n.keys))
		for i, k := range n.keys {
			m[k] = n.items[i].toAny()
		}
		return m
	case kindArray:
		s := make([]any, len(n.items))
		for i, item := range n.items {
			s[i] = item.toAny()
		}
		return s
	}
	return n.scalar
}

// fromAny converts a generically decoded value. Map keys are sorted.
func fromAny(v any) *node {
	switch x := v.(type) {
	case map[string]any:
		n := &node{kind: kindObject}
		n.keys = make([]string, 0, len(x))
		for k := range x {
			n.keys = append(n.keys, k)
		}
		sort.Strings(n.keys)
		for _, k := range n.keys {
			n.items = append(n.items, fromAny(x[k]))
		}
		return n
	case []any:
		n := &node{kind: kindArray}
		for _, item := range x {
			n.items = append(n.items, fromAny(item))
		}
		return n
	}
	return scalarNode(v)
}
