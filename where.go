package sqlgen

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wdetools/sqlgen/pkg/constants"
	"github.com/wdetools/sqlgen/pkg/literal"
	"github.com/wdetools/sqlgen/pkg/predicate"
)

// Where is a table together with a rendered condition.
//
// The zero Where, which Table.Where returns with an error, selects nothing
// and its statements render empty.
type Where struct {
	table     Table
	condition string
}

// Where compiles cond into a condition on t.
//
// The tree is simplified first. A tree that cannot be rendered yields a
// *TranslationError wrapping the predicate error.
func (t Table) Where(cond predicate.Node) (Where, error) {
	sql, err := predicate.Compile(cond)
	if err != nil {
		return Where{}, &TranslationError{Table: t.name, Err: err}
	}
	return Where{table: t, condition: sql}, nil
}

// Unconditional selects every row of t.
func (t Table) Unconditional() Where {
	return Where{table: t, condition: constants.AlwaysTrue}
}

// WhereRaw uses cond verbatim. An empty cond selects every row.
func (t Table) WhereRaw(cond string) Where {
	if cond == "" {
		return t.Unconditional()
	}
	return Where{table: t, condition: cond}
}

// WhereIn selects the rows whose column is one of values.
//
// Values are written in their default text form, not as escaped literals:
// `id` IN (1, 2, 3). Use WhereInLiterals for strings.
func (t Table) WhereIn(column string, values ...any) Where {
	return Where{table: t, condition: membership(column, values, plainText)}
}

// WhereInLiterals is WhereIn with every value rendered as an SQL literal.
func (t Table) WhereInLiterals(column string, values ...any) Where {
	return Where{table: t, condition: membership(column, values, literal.Serialize)}
}

// Table returns the table of w.
func (w Where) Table() Table {
	return w.table
}

// Condition returns the rendered condition, "1" when unconditional.
func (w Where) Condition() string {
	return w.condition
}

func (w Where) valid() bool {
	return !w.table.IsZero() && w.condition != ""
}

// IsUnconditional reports whether w selects every row.
func (w Where) IsUnconditional() bool {
	return w.condition == constants.AlwaysTrue
}

// WhereIn narrows w: (existing) AND (`column` IN (values)).
func (w Where) WhereIn(column string, values ...any) Where {
	return w.and(membership(column, values, plainText))
}

// WhereInLiterals narrows w like WhereIn with values rendered as SQL literals.
func (w Where) WhereInLiterals(column string, values ...any) Where {
	return w.and(membership(column, values, literal.Serialize))
}

func (w Where) and(cond string) Where {
	if w.IsUnconditional() {
		return Where{table: w.table, condition: cond}
	}
	return Where{table: w.table, condition: "(" + w.condition + ") AND (" + cond + ")"}
}

// membership renders `column` IN (...). An empty list matches nothing.
func membership(column string, values []any, format func(any) string) string {
	if len(values) == 0 {
		return constants.AlwaysFalse
	}
	items := lo.Map(values, func(v any, _ int) string { return format(v) })
	return quote(column) + " IN (" + strings.Join(items, ", ") + ")"
}

func plainText(v any) string {
	if literal.IsNull(v) {
		return constants.Null
	}
	if l, ok := v.(literal.Literaler); ok {
		return l.SQLLiteral()
	}
	return fmt.Sprint(v)
}

// Delete renders a DELETE of the rows selected by w.
func (w Where) Delete() Query {
	if !w.valid() {
		return statement(w.table, "")
	}
	if w.IsUnconditional() {
		return statement(w.table, "DELETE FROM "+w.table.String()+";")
	}
	return statement(w.table, "DELETE FROM "+w.table.String()+" WHERE "+w.condition+";")
}
