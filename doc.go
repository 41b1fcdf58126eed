// The [sqlgen] package builds MySQL-compatible SQL text from Go values.
//
// Nothing in this package talks to a database. Every builder is an immutable
// value and every operation returns a new value, so chains can be forked,
// reused and shared between goroutines freely.
//
// # Tables and conditions
//
// Statements start from a [Table]. A [Where] pairs the table with a condition,
// built from a [predicate.Node] tree with [Table.Where], from a membership list
// with [Table.WhereIn], or with [Table.Unconditional] for the whole table.
// Conditions that simplify to true make the builders leave out the WHERE
// clause.
//
// # Statements
//
// [Where.Delete] and [UpdateQuery.Update] render DELETE and UPDATE statements.
// [Table.BulkInsert] renders a multi-row INSERT whose columns are fixed by the
// first [Row]. Typed records are inserted through an explicit [Schema] with
// [InsertRecords].
//
// # Values
//
// Values are rendered by [github.com/wdetools/sqlgen/pkg/literal]: strings are
// double-quoted and escaped, booleans become 1 and 0, nil becomes NULL. Types in
// [github.com/wdetools/sqlgen/pkg/models] cover date-times, UUIDs, durations,
// decimals and raw SQL expressions.
//
// # Scripts
//
// A [Script] is an ordered list of [Query] fragments: statements, comments,
// blank lines and session variable definitions. [Script.Build] joins them into
// a single text.
//
// # Contrib
//
// The [github.com/wdetools/sqlgen/contrib] directory holds the packages that
// touch the outside world: decoding row files, executing scripts against a
// server and the rowdump command. They are not covered by the core's
// guarantees.
package sqlgen
