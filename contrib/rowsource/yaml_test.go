package rowsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdetools/sqlgen"
	"github.com/wdetools/sqlgen/pkg/models"
)

const creatureYAML = `
variables:
  guid: 1000
batches:
  - table: creature
    ignore: true
    rows:
      - {zeta: 1, alpha: "x"}
      - zeta: 2
        alpha: y
        spawned: 2024-01-02
        price: {decimal: 9.90}
  - table: pairs
    columns: [a, b]
    rows:
      - [1, null]
      - [~, true]
`

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	doc, err := DecodeYAML([]byte(creatureYAML))
	require.NoError(t, err)

	assert.Equal(t, []Variable{{Name: "guid", Value: 1000}}, doc.Variables)
	require.Len(t, doc.Batches, 2)

	assert.Equal(t, []sqlgen.Row{
		sqlgen.NewRow(sqlgen.Col("zeta", 1), sqlgen.Col("alpha", "x")),
		sqlgen.NewRow(
			sqlgen.Col("zeta", 2),
			sqlgen.Col("alpha", "y"),
			sqlgen.Col("spawned", "2024-01-02"),
			sqlgen.Col("price", models.Decimal("9.9")),
		),
	}, doc.Batches[0].Rows)

	got := sqlgen.NewTable("pairs").BulkInsert(doc.Batches[1].Rows, false).String()
	assert.Equal(t, "INSERT INTO `pairs` (`a`, `b`) VALUES\n(1, NULL),\n(NULL, 1);", got)
}

func TestDecodeYAML_alias(t *testing.T) {
	t.Parallel()

	doc, err := DecodeYAML([]byte(`
table: t
rows:
  - &first {id: 1, name: a}
  - *first
`))
	require.NoError(t, err)
	require.Len(t, doc.Batches[0].Rows, 2)
	assert.Equal(t, doc.Batches[0].Rows[0], doc.Batches[0].Rows[1])
}

func TestDecodeYAML_errors(t *testing.T) {
	t.Parallel()

	_, err := DecodeYAML([]byte("table: [unclosed"))
	assert.Error(t, err)

	_, err = DecodeYAML([]byte(""))
	assert.ErrorContains(t, err, "document must be an object")

	_, err = DecodeYAML([]byte("- a\n- b\n"))
	assert.ErrorContains(t, err, "document must be an object")

	_, err = DecodeYAML([]byte("base: &b {x: 1}\nrow:\n  <<: *b\n"))
	assert.ErrorContains(t, err, "merge keys are not supported")
}
