package sqlgen

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragments(t *testing.T) {
	tests := []struct {
		name     string
		query    Query
		wantSQL  string
		wantKind QueryKind
	}{
		{name: "comment", query: Comment("creature 42"), wantSQL: " -- creature 42", wantKind: KindComment},
		{name: "blank line", query: BlankLine(), wantSQL: "\n", wantKind: KindBlankLine},
		{name: "variable number", query: DefineVariable("guid", 1000), wantSQL: "SET @guid := 1000;", wantKind: KindVariable},
		{name: "variable string", query: DefineVariable("name", "a\"b"), wantSQL: "SET @name := \"a\\\"b\";", wantKind: KindVariable},
		{name: "variable from variable", query: DefineVariable("next", NewVariable("guid")), wantSQL: "SET @next := @guid;", wantKind: KindVariable},
		{name: "variable null", query: DefineVariable("x", nil), wantSQL: "SET @x := NULL;", wantKind: KindVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.String(); got != tt.wantSQL {
				t.Errorf("SQL mismatch\ngot:  %q\nwant: %q", got, tt.wantSQL)
			}
			assert.Equal(t, tt.wantKind, tt.query.Kind())
			_, ok := tt.query.Table()
			assert.False(t, ok)
		})
	}
}

func TestScript(t *testing.T) {
	t.Parallel()

	table := NewTable("t")
	s := NewScript().
		DefineVariable("guid", 100)
	guid := s.Variable("guid")

	s = s.Comment("reset").
		Add(table.WhereIn("id", guid).Delete()).
		Add(table.BulkInsert(nil, false)).
		Add(table.Insert(NewRow(Col("id", guid), Col("name", "x")))).
		BlankLine().
		Comment("done")

	want := "SET @guid := 100;\n" +
		" -- reset\n" +
		"DELETE FROM `t` WHERE `id` IN (@guid);\n" +
		"INSERT INTO `t` (`id`, `name`) VALUES\n(@guid, \"x\");\n" +
		"\n" +
		" -- done"

	assert.Equal(t, want, s.String())
	assert.Equal(t, 7, s.Len())

	built := s.Build()
	assert.Equal(t, want, built.String())
	assert.Equal(t, KindScript, built.Kind())
}

func TestScript_leadingBlankLine(t *testing.T) {
	t.Parallel()

	s := NewScript(BlankLine(), Comment("a"), BlankLine(), BlankLine(), Comment("b"))
	assert.Equal(t, "\n -- a\n\n\n -- b", s.String())
	assert.Empty(t, NewScript().String())
}

func TestScript_persistent(t *testing.T) {
	t.Parallel()

	base := NewScript(Comment("base"))
	a := base.Comment("a")
	b := base.Comment("b")

	assert.Equal(t, " -- base", base.String())
	assert.Equal(t, " -- base\n -- a", a.String())
	assert.Equal(t, " -- base\n -- b", b.String())

	queries := a.Queries()
	queries[0] = Comment("changed")
	assert.Equal(t, " -- base\n -- a", a.String())
}

func TestScript_concurrentForks(t *testing.T) {
	t.Parallel()

	base := NewScript(Comment("header"))
	results := make([]string, 16)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = base.Add(NewTable("t").WhereIn("id", i).Delete()).String()
		}()
	}
	wg.Wait()

	for i, got := range results {
		require.Equal(t, " -- header\nDELETE FROM `t` WHERE `id` IN ("+strconv.Itoa(i)+");", got)
	}
}
