package sqlgen

import (
	"strings"

	"github.com/samber/lo"

	"github.com/wdetools/sqlgen/pkg/literal"
)

// Assignment is one `column` = value pair of an UPDATE.
type Assignment struct {
	Column string
	// Value is the rendered literal.
	Value string
}

// UpdateQuery collects assignments for the rows of a Where.
//
// Set never modifies its receiver, so a partial chain can be shared:
//
//	base := where.Set("a", 1)
//	q1 := base.Set("b", 2).Update()
//	q2 := base.Set("c", 3).Update()
type UpdateQuery struct {
	where Where
	prev  *UpdateQuery
	set   Assignment
	// number of assignments, 0 for the zero UpdateQuery
	n int
}

// Set starts an update of the rows selected by w.
func (w Where) Set(column string, value any) UpdateQuery {
	return UpdateQuery{where: w, set: Assignment{Column: column, Value: literal.Serialize(value)}, n: 1}
}

// Set adds an assignment after the existing ones.
func (u UpdateQuery) Set(column string, value any) UpdateQuery {
	prev := u
	return UpdateQuery{
		where: u.where,
		prev:  &prev,
		set:   Assignment{Column: column, Value: literal.Serialize(value)},
		n:     u.n + 1,
	}
}

// Where returns the rows the update applies to.
func (u UpdateQuery) Where() Where {
	return u.where
}

// Assignments returns the assignments in the order they were set.
func (u UpdateQuery) Assignments() []Assignment {
	out := make([]Assignment, 0, u.n)
	for q := &u; q != nil && q.n > 0; q = q.prev {
		out = append(out, q.set)
	}
	return lo.Reverse(out)
}

// Update renders the UPDATE statement. It is empty when there is nothing to
// set or the Where is the zero value.
func (u UpdateQuery) Update() Query {
	if u.n == 0 || !u.where.valid() {
		return statement(u.where.table, "")
	}
	sets := lo.Map(u.Assignments(), func(a Assignment, _ int) string {
		return quote(a.Column) + " = " + a.Value
	})

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(u.where.table.String())
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	if !u.where.IsUnconditional() {
		b.WriteString(" WHERE ")
		b.WriteString(u.where.condition)
	}
	b.WriteString(";")
	return statement(u.where.table, b.String())
}
