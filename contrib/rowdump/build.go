package rowdump

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/wdetools/sqlgen"
	"github.com/wdetools/sqlgen/contrib/rowsource"
	"github.com/wdetools/sqlgen/pkg/constants"
	"github.com/wdetools/sqlgen/pkg/predicate"
)

// Options controls how documents become a script.
type Options struct {
	ChunkSize int
	Delete    bool
}

// Stats counts what a script does.
type Stats struct {
	Variables int `json:"variables"`
	Batches   int `json:"batches"`
	Rows      int `json:"rows"`
	Inserts   int `json:"inserts"`
	Deletes   int `json:"deletes"`
	Updates   int `json:"updates"`
}

// Build turns docs into one script. Each document defines its variables
// first, then each batch gets a comment, an optional DELETE by key, the
// INSERT statements and the UPDATE statements, followed by a blank line.
func Build(docs []*rowsource.Document, opts Options) (sqlgen.Script, Stats, error) {
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	var stats Stats
	script := sqlgen.NewScript()

	for _, doc := range docs {
		for _, v := range doc.Variables {
			script = script.DefineVariable(v.Name, v.Value)
			stats.Variables++
		}
		if len(doc.Variables) > 0 {
			script = script.BlankLine()
		}

		for _, b := range doc.Batches {
			var err error
			script, err = appendBatch(script, b, opts, &stats)
			if err != nil {
				return sqlgen.Script{}, Stats{}, fmt.Errorf("table %s: %w", b.Table, err)
			}
		}
	}

	return script, stats, nil
}

func appendBatch(script sqlgen.Script, b rowsource.Batch, opts Options, stats *Stats) (sqlgen.Script, error) {
	table := sqlgen.NewTable(b.Table)
	stats.Batches++
	stats.Rows += len(b.Rows)

	script = script.Comment(fmt.Sprintf("%s: %d rows, %d updates", b.Table, len(b.Rows), len(b.Updates)))

	if opts.Delete {
		if keys := b.KeyValues(); len(keys) > 0 {
			script = script.Add(table.WhereInLiterals(b.Key, keys...).Delete())
			stats.Deletes++
		}
	}

	for _, chunk := range lo.Chunk(b.Rows, opts.ChunkSize) {
		script = script.Add(table.BulkInsert(chunk, b.Ignore))
		stats.Inserts++
	}

	for i, u := range b.Updates {
		q, err := update(table, u)
		if err != nil {
			return script, fmt.Errorf("update %d: %w", i, err)
		}
		script = script.Add(q)
		stats.Updates++
	}

	return script.BlankLine(), nil
}

// update builds the UPDATE for u. Every cell of u.Where must match; an
// empty Where is only accepted with u.All.
func update(table sqlgen.Table, u rowsource.Update) (sqlgen.Query, error) {
	if len(u.Set) == 0 {
		return sqlgen.Query{}, constants.ErrEmptyStatement
	}

	where := table.Unconditional()
	if !u.All {
		if len(u.Where) == 0 {
			return sqlgen.Query{}, constants.ErrUnboundedUpdate
		}
		conds := lo.Map(u.Where, func(c sqlgen.Cell, _ int) predicate.Node {
			return predicate.Eq(predicate.Col(c.Column), predicate.Val(c.Value))
		})
		var err error
		if where, err = table.Where(predicate.And(conds...)); err != nil {
			return sqlgen.Query{}, err
		}
	}

	q := where.Set(u.Set[0].Column, u.Set[0].Value)
	for _, c := range u.Set[1:] {
		q = q.Set(c.Column, c.Value)
	}
	return q.Update(), nil
}
