package sqlgen

import (
	"github.com/samber/lo"
)

// Field maps a column to a value of a record.
type Field[T any] struct {
	Name string
	Get  func(T) any
}

// Schema lists the columns of a record type in insert order.
//
//	var userSchema = sqlgen.Schema[User]{
//		{Name: "id", Get: func(u User) any { return u.ID }},
//		{Name: "name", Get: func(u User) any { return u.Name }},
//	}
type Schema[T any] []Field[T]

// Columns returns the column names.
func (s Schema[T]) Columns() []string {
	return lo.Map(s, func(f Field[T], _ int) string { return f.Name })
}

// Row returns the cells of rec.
func (s Schema[T]) Row(rec T) Row {
	return lo.Map(s, func(f Field[T], _ int) Cell { return Cell{Column: f.Name, Value: f.Get(rec)} })
}

// InsertRecords renders one INSERT for recs, with the columns of s.
func InsertRecords[T any](t Table, s Schema[T], recs []T, ignore bool) Query {
	return t.BulkInsertSeq(func(yield func(Row) bool) {
		for _, rec := range recs {
			if !yield(s.Row(rec)) {
				return
			}
		}
	}, ignore)
}
