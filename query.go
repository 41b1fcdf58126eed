package sqlgen

// QueryKind tells what a Query fragment is.
type QueryKind int

const (
	KindStatement QueryKind = iota
	KindComment
	KindBlankLine
	KindVariable
	KindScript
)

func (k QueryKind) String() string {
	switch k {
	case KindStatement:
		return "statement"
	case KindComment:
		return "comment"
	case KindBlankLine:
		return "blank line"
	case KindVariable:
		return "variable"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// Query is a piece of generated SQL text.
//
// An insert with no rows is a statement with empty text.
type Query struct {
	text     string
	kind     QueryKind
	table    Table
	hasTable bool
}

func statement(t Table, text string) Query {
	return Query{text: text, kind: KindStatement, table: t, hasTable: true}
}

// String returns the SQL text.
func (q Query) String() string {
	return q.text
}

// Kind returns the kind of fragment.
func (q Query) Kind() QueryKind {
	return q.kind
}

// Table returns the table of a single-table statement.
func (q Query) Table() (Table, bool) {
	return q.table, q.hasTable
}

// IsEmpty reports whether the query has no text.
func (q Query) IsEmpty() bool {
	return q.text == ""
}
