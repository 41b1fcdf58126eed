package sqlgen

import (
	"github.com/wdetools/sqlgen/pkg/predicate"
)

// Table names the table a statement operates on.
type Table struct {
	name string
}

// NewTable returns the table called name.
func NewTable(name string) Table {
	return Table{name: name}
}

// Name returns the unquoted table name.
func (t Table) Name() string {
	return t.name
}

// IsZero reports whether t has no name. Statements on it render empty.
func (t Table) IsZero() bool {
	return t.name == ""
}

// String returns the quoted table name.
func (t Table) String() string {
	return quote(t.name)
}

func quote(name string) string {
	return predicate.Backticks.Ident(name)
}
