package slog_test

import (
	"bufio"
	"bytes"
	rawslog "log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdetools/sqlgen/pkg/logger"
	"github.com/wdetools/sqlgen/pkg/logger/slog"
)

type record struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
	Table string `json:"table"`
	Rows  int    `json:"rows"`
}

func records(t *testing.T, buf *bytes.Buffer) []record {
	t.Helper()
	var out []record
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var r record
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		out = append(out, r)
	}
	return out
}

func TestLogger_levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var log logger.Logger = slog.NewJSON(&buf, rawslog.LevelDebug)

	log.Error("insert failed", "table", "creature")
	log.Warn("duplicate key", "table", "creature")
	log.Info("dump completed", "rows", 3)
	log.Debug("statement executed")

	assert.Equal(t, []record{
		{Level: "ERROR", Msg: "insert failed", Table: "creature"},
		{Level: "WARN", Msg: "duplicate key", Table: "creature"},
		{Level: "INFO", Msg: "dump completed", Rows: 3},
		{Level: "DEBUG", Msg: "statement executed"},
	}, records(t, &buf))
}

func TestLogger_filter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.NewJSON(&buf, rawslog.LevelWarn)

	log.Info("hidden")
	log.Debug("hidden")
	log.Warn("shown")

	got := records(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "shown", got[0].Msg)
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(rawslog.NewJSONHandler(&buf, nil)).With("table", "item_template")

	log.Info("batch written", "rows", 2)

	assert.Equal(t, []record{{Level: "INFO", Msg: "batch written", Table: "item_template", Rows: 2}}, records(t, &buf))
}
