package sqlgen

import (
	"slices"
	"strings"

	"github.com/wdetools/sqlgen/pkg/literal"
)

// Comment returns a comment fragment: " -- text".
func Comment(text string) Query {
	return Query{text: " -- " + text, kind: KindComment}
}

// BlankLine returns a fragment holding a single newline.
func BlankLine() Query {
	return Query{text: "\n", kind: KindBlankLine}
}

// DefineVariable returns SET @name := value;
func DefineVariable(name string, value any) Query {
	return Query{text: "SET " + NewVariable(name).String() + " := " + literal.Serialize(value) + ";", kind: KindVariable}
}

// Script is an ordered list of fragments.
//
// Adding to a Script returns a new Script and leaves the receiver unchanged.
type Script struct {
	queries []Query
}

// NewScript returns a script of queries.
func NewScript(queries ...Query) Script {
	return Script{queries: slices.Clone(queries)}
}

// Add appends queries.
func (s Script) Add(queries ...Query) Script {
	return Script{queries: append(slices.Clip(s.queries), queries...)}
}

// Comment appends a comment.
func (s Script) Comment(text string) Script {
	return s.Add(Comment(text))
}

// BlankLine appends a blank line.
func (s Script) BlankLine() Script {
	return s.Add(BlankLine())
}

// DefineVariable appends SET @name := value;
func (s Script) DefineVariable(name string, value any) Script {
	return s.Add(DefineVariable(name, value))
}

// Variable returns the variable @name. It does not append anything.
func (s Script) Variable(name string) Variable {
	return NewVariable(name)
}

// Queries returns the fragments in order.
func (s Script) Queries() []Query {
	return slices.Clone(s.queries)
}

// Len returns the number of fragments.
func (s Script) Len() int {
	return len(s.queries)
}

// String joins the fragments with newlines. Empty fragments are skipped, and a
// fragment ending in a newline is not followed by another.
func (s Script) String() string {
	var b strings.Builder
	prev := ""
	for _, q := range s.queries {
		if q.text == "" {
			continue
		}
		if b.Len() > 0 && !strings.HasSuffix(prev, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(q.text)
		prev = q.text
	}
	return b.String()
}

// Build returns the whole script as one query.
func (s Script) Build() Query {
	return Query{text: s.String(), kind: KindScript}
}
