package rowdump

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/wdetools/sqlgen"
	"github.com/wdetools/sqlgen/contrib/rowsource"
	"github.com/wdetools/sqlgen/contrib/sqlexec"
	"github.com/wdetools/sqlgen/pkg/logger"
	sqlgenslog "github.com/wdetools/sqlgen/pkg/logger/slog"
)

// maxParallelReads bounds the number of files decoded at once.
const maxParallelReads = 4

// Do reads the configured inputs, writes the generated script and, with
// Execute set, runs it. The configuration should be validated first.
func Do(ctx context.Context, config *Config) error {
	log, closeLog, err := newLogger(config, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	return run(ctx, config, log, os.Stdout)
}

// newLogger builds the logger named by config.LogFormat. Lines go to
// config.LogPath, or to stderr when it is empty.
func newLogger(config *Config, stderr io.Writer) (logger.Logger, func(), error) {
	if config.LogFormat == LogFormatSlog {
		level := slog.LevelInfo
		if config.Verbose {
			level = slog.LevelDebug
		}
		w, closeFn := stderr, func() {}
		if config.LogPath != "" {
			f, err := os.OpenFile(config.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, nil, err
			}
			w, closeFn = f, func() { _ = f.Close() }
		}
		return sqlgenslog.NewJSON(w, level), closeFn, nil
	}

	level := zerolog.InfoLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	log, err := logger.New().FromBuffer(stderr).FromPath(config.LogPath).WithLevel(level).Make()
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Close() }, nil
}

func run(ctx context.Context, config *Config, log logger.Logger, stdout io.Writer) error {
	startTime := time.Now()

	docs, err := ReadInputs(ctx, config.Inputs, config.Charset)
	if err != nil {
		return err
	}

	script, stats, err := Build(docs, Options{ChunkSize: config.ChunkSize, Delete: config.Delete})
	if err != nil {
		return err
	}
	log.Debug("script built", "queries", script.Len())

	if err := writeScript(config.Output, script, stdout); err != nil {
		return err
	}

	if config.Execute {
		exec, err := sqlexec.Open(config.DSN, log)
		if err != nil {
			return err
		}
		defer exec.Close()

		if _, err := exec.ExecScript(ctx, script); err != nil {
			if sqlexec.IsDuplicateEntry(err) {
				log.Warn("duplicate key; mark the batch with \"ignore\" or enable delete")
			}
			return fmt.Errorf("execute failed: %w", err)
		}
	}

	summary, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	log.Info("dump completed", "elapsed", time.Since(startTime).String(), "stats", string(summary))
	return nil
}

// ReadInputs decodes paths concurrently and returns the documents in the
// order of paths.
func ReadInputs(ctx context.Context, paths []string, charset string) ([]*rowsource.Document, error) {
	docs := make([]*rowsource.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := rowsource.ReadFile(path, charset)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func writeScript(path string, script sqlgen.Script, stdout io.Writer) (err error) {
	w := stdout
	if path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		w = f
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(script.String() + "\n"); err != nil {
		return err
	}
	return bw.Flush()
}
