package sqlgen

import (
	"iter"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/wdetools/sqlgen/pkg/constants"
	"github.com/wdetools/sqlgen/pkg/literal"
)

// Cell is a column value of a Row.
type Cell struct {
	Column string
	Value  any
}

// Col returns a cell.
func Col(column string, value any) Cell {
	return Cell{Column: column, Value: value}
}

// Row is an ordered list of cells.
type Row []Cell

// NewRow returns a row of cells.
func NewRow(cells ...Cell) Row {
	return Row(cells)
}

// Columns returns the column names in order.
func (r Row) Columns() []string {
	return lo.Map(r, func(c Cell, _ int) string { return c.Column })
}

// Get returns the value of column.
func (r Row) Get(column string) (any, bool) {
	for _, c := range r {
		if c.Column == column {
			return c.Value, true
		}
	}
	return nil, false
}

// valueAt looks column up, trying position i first.
func (r Row) valueAt(i int, column string) (any, bool) {
	if i < len(r) && r[i].Column == column {
		return r[i].Value, true
	}
	return r.Get(column)
}

// Insert renders a single-row INSERT.
func (t Table) Insert(row Row) Query {
	return t.BulkInsert([]Row{row}, false)
}

// InsertIgnore renders a single-row INSERT IGNORE.
func (t Table) InsertIgnore(row Row) Query {
	return t.BulkInsert([]Row{row}, true)
}

// BulkInsert renders one INSERT for all rows.
//
// The columns are those of the first row, in its order. Later rows are matched
// by column name, and columns they lack are NULL. No rows give an empty query.
func (t Table) BulkInsert(rows []Row, ignore bool) Query {
	return t.BulkInsertSeq(slices.Values(rows), ignore)
}

// BulkInsertSeq is BulkInsert over a sequence of rows.
func (t Table) BulkInsertSeq(rows iter.Seq[Row], ignore bool) Query {
	if t.IsZero() {
		return statement(t, "")
	}
	var (
		b       strings.Builder
		columns []string
		first   = true
	)

	for row := range rows {
		if first {
			columns = row.Columns()
			b.WriteString("INSERT")
			if ignore {
				b.WriteString(" IGNORE")
			}
			b.WriteString(" INTO ")
			b.WriteString(t.String())
			b.WriteString(" (")
			b.WriteString(strings.Join(lo.Map(columns, func(c string, _ int) string { return quote(c) }), ", "))
			b.WriteString(") VALUES\n")
			first = false
		} else {
			b.WriteString(",\n")
		}

		b.WriteByte('(')
		for i, column := range columns {
			if i > 0 {
				b.WriteString(", ")
			}
			v, ok := row.valueAt(i, column)
			if !ok {
				b.WriteString(constants.Null)
				continue
			}
			b.WriteString(literal.Serialize(v))
		}
		b.WriteByte(')')
	}

	if first {
		return statement(t, "")
	}

	b.WriteByte(';')
	return statement(t, b.String())
}
