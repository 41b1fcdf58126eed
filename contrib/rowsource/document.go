// Package rowsource decodes row files into batches for the statement builder.
//
// A document names the tables to fill and their rows:
//
//	{
//	  "variables": {"guid": 1000},
//	  "batches": [
//	    {
//	      "table": "creature",
//	      "ignore": true,
//	      "key": "guid",
//	      "rows": [
//	        {"guid": {"var": "guid"}, "id": 6, "name": "Hogger"}
//	      ],
//	      "updates": [
//	        {"where": {"id": 6}, "set": {"scale": 1.5}}
//	      ]
//	    }
//	  ]
//	}
//
// Rows are objects, whose key order is kept, or arrays matched against a
// "columns" list. A document holding a single batch may put the batch fields
// at the top level. Objects with the single key "var", "raw" or "decimal"
// stand for a session variable, a raw SQL expression and an exact decimal.
//
// An update needs a "where" object; "where": "all" updates every row.
//
// JSON and YAML keep key order. CBOR and MessagePack maps do not, so object
// rows in those formats need a "columns" list.
package rowsource

import (
	"fmt"

	"github.com/wdetools/sqlgen"
	"github.com/wdetools/sqlgen/pkg/constants"
	"github.com/wdetools/sqlgen/pkg/models"
)

// Document is a decoded row file.
type Document struct {
	Variables []Variable
	Batches   []Batch
}

// Variable is a session variable defined before the batches.
type Variable struct {
	Name  string
	Value any
}

// Batch is the data for one table.
type Batch struct {
	Table string
	// Ignore makes the inserts INSERT IGNORE.
	Ignore bool
	// Key, when set, names the column whose values are deleted before the
	// rows are inserted.
	Key     string
	Rows    []sqlgen.Row
	Updates []Update
}

// Update sets the columns of Set on the rows matching every cell of Where.
// All selects every row instead, written as "where": "all".
type Update struct {
	Where sqlgen.Row
	All   bool
	Set   sqlgen.Row
}

// KeyValues returns the values of the Key column, in row order.
func (b Batch) KeyValues() []any {
	if b.Key == "" {
		return nil
	}
	values := make([]any, 0, len(b.Rows))
	for _, row := range b.Rows {
		if v, ok := row.Get(b.Key); ok {
			values = append(values, v)
		}
	}
	return values
}

func buildDocument(root *node, ordered bool) (*Document, error) {
	if root == nil || root.kind != kindObject {
		return nil, fmt.Errorf("document must be an object")
	}

	doc := &Document{}

	if vars := root.get("variables"); vars != nil {
		v, err := buildVariables(vars)
		if err != nil {
			return nil, err
		}
		doc.Variables = v
	}

	batches := root.get("batches")
	switch {
	case batches != nil:
		if batches.kind != kindArray {
			return nil, fmt.Errorf("batches must be an array")
		}
		for i, n := range batches.items {
			b, err := buildBatch(n, ordered)
			if err != nil {
				return nil, fmt.Errorf("batch %d: %w", i, err)
			}
			doc.Batches = append(doc.Batches, b)
		}
	case root.get("table") != nil:
		b, err := buildBatch(root, ordered)
		if err != nil {
			return nil, err
		}
		doc.Batches = append(doc.Batches, b)
	}

	return doc, nil
}

func buildVariables(n *node) ([]Variable, error) {
	switch n.kind {
	case kindObject:
		vars := make([]Variable, len(n.keys))
		for i, name := range n.keys {
			v, err := cellValue(n.items[i])
			if err != nil {
				return nil, fmt.Errorf("variable %s: %w", name, err)
			}
			vars[i] = Variable{Name: name, Value: v}
		}
		return vars, nil
	case kindArray:
		vars := make([]Variable, 0, len(n.items))
		for i, item := range n.items {
			name, ok := item.get("name").str()
			if !ok || name == "" {
				return nil, fmt.Errorf("variable %d: name is required", i)
			}
			v, err := cellValue(item.get("value"))
			if err != nil {
				return nil, fmt.Errorf("variable %s: %w", name, err)
			}
			vars = append(vars, Variable{Name: name, Value: v})
		}
		return vars, nil
	}
	return nil, fmt.Errorf("variables must be an object or an array")
}

func buildBatch(n *node, ordered bool) (Batch, error) {
	if n.kind != kindObject {
		return Batch{}, fmt.Errorf("batch must be an object")
	}

	table, ok := n.get("table").str()
	if !ok || table == "" {
		return Batch{}, constants.ErrNoTable
	}
	b := Batch{Table: table}
	if ignore := n.get("ignore"); ignore != nil {
		if b.Ignore, ok = ignore.boolean(); !ok {
			return Batch{}, fmt.Errorf("table %s: ignore must be a boolean", table)
		}
	}
	if key := n.get("key"); key != nil {
		if b.Key, ok = key.str(); !ok {
			return Batch{}, fmt.Errorf("table %s: key must be a string", table)
		}
	}

	var columns []string
	if cols := n.get("columns"); cols != nil {
		if cols.kind != kindArray {
			return Batch{}, fmt.Errorf("table %s: columns must be an array", table)
		}
		for _, c := range cols.items {
			name, ok := c.str()
			if !ok {
				return Batch{}, fmt.Errorf("table %s: column names must be strings", table)
			}
			columns = append(columns, name)
		}
	}

	if rows := n.get("rows"); rows != nil {
		if rows.kind != kindArray {
			return Batch{}, fmt.Errorf("table %s: rows must be an array", table)
		}
		for i, r := range rows.items {
			row, err := buildRow(r, columns, ordered)
			if err != nil {
				return Batch{}, fmt.Errorf("table %s row %d: %w", table, i, err)
			}
			b.Rows = append(b.Rows, row)
		}
	}

	if updates := n.get("updates"); updates != nil {
		if updates.kind != kindArray {
			return Batch{}, fmt.Errorf("table %s: updates must be an array", table)
		}
		for i, u := range updates.items {
			update, err := buildUpdate(u)
			if err != nil {
				return Batch{}, fmt.Errorf("table %s update %d: %w", table, i, err)
			}
			b.Updates = append(b.Updates, update)
		}
	}

	return b, nil
}

func buildUpdate(n *node) (Update, error) {
	if n.kind != kindObject {
		return Update{}, fmt.Errorf("update must be an object")
	}

	var u Update
	if s, ok := n.get("where").str(); ok {
		if s != "all" {
			return Update{}, fmt.Errorf("where must be an object or \"all\", got %q", s)
		}
		u.All = true
	} else {
		where, err := buildRow(n.get("where"), nil, true)
		if err != nil {
			return Update{}, fmt.Errorf("where: %w", err)
		}
		if len(where) == 0 {
			return Update{}, constants.ErrUnboundedUpdate
		}
		u.Where = where
	}

	set, err := buildRow(n.get("set"), nil, true)
	if err != nil {
		return Update{}, fmt.Errorf("set: %w", err)
	}
	if len(set) == 0 {
		return Update{}, constants.ErrEmptyStatement
	}
	u.Set = set
	return u, nil
}

func buildRow(n *node, columns []string, ordered bool) (sqlgen.Row, error) {
	if n == nil {
		return nil, nil
	}

	switch n.kind {
	case kindArray:
		if columns == nil {
			return nil, constants.ErrNoColumns
		}
		if len(n.items) != len(columns) {
			return nil, fmt.Errorf("%w: %d values for %d columns", constants.ErrRowWidth, len(n.items), len(columns))
		}
		row := make(sqlgen.Row, len(columns))
		for i, item := range n.items {
			v, err := cellValue(item)
			if err != nil {
				return nil, err
			}
			row[i] = sqlgen.Col(columns[i], v)
		}
		return row, nil
	case kindObject:
		keys := n.keys
		if columns != nil {
			keys = columns
		} else if !ordered {
			return nil, constants.ErrNoColumns
		}
		row := make(sqlgen.Row, 0, len(keys))
		for _, k := range keys {
			item := n.get(k)
			if item == nil {
				continue
			}
			v, err := cellValue(item)
			if err != nil {
				return nil, err
			}
			row = append(row, sqlgen.Col(k, v))
		}
		return row, nil
	}
	return nil, fmt.Errorf("row must be an object or an array")
}

// cellValue returns the Go value of a cell.
func cellValue(n *node) (any, error) {
	if n == nil {
		return nil, nil
	}

	switch n.kind {
	case kindScalar:
		return n.scalar, nil
	case kindObject:
		if len(n.keys) == 1 {
			s, isString := n.items[0].str()
			switch n.keys[0] {
			case "var":
				if !isString {
					return nil, fmt.Errorf("var must name a variable")
				}
				return sqlgen.NewVariable(s), nil
			case "raw":
				if !isString {
					return nil, fmt.Errorf("raw must be a string")
				}
				return models.Raw(s), nil
			case "decimal":
				if isString {
					return models.Decimal(s), nil
				}
				return models.Decimal(fmt.Sprint(n.items[0].scalar)), nil
			}
		}
	}
	// nested data has no literal and renders as the invalid-type marker
	return n.toAny(), nil
}
