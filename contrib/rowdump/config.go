package rowdump

import (
	"fmt"
	"strconv"

	"github.com/wdetools/sqlgen"
)

// DefaultChunkSize is the number of rows per INSERT statement.
const DefaultChunkSize = 500

// Log formats.
const (
	// LogFormatZerolog writes zerolog JSON lines.
	LogFormatZerolog = "zerolog"
	// LogFormatSlog writes log/slog JSON lines.
	LogFormatSlog = "slog"
)

// Config holds all configuration options for a dump
type Config struct {
	// Row files to read, in order
	Inputs []string
	// Charset of JSON and YAML inputs, e.g. "windows-1252". Empty means UTF-8.
	Charset string

	// Output file path. Empty writes to stdout.
	Output string

	// Rows per INSERT statement
	ChunkSize int
	// Delete the rows of each batch by key before inserting them
	Delete bool

	// Run the script on the server instead of only writing it
	Execute bool
	// go-sql-driver/mysql DSN used with Execute
	DSN string

	// Log file path. Empty logs to stderr.
	LogPath string
	// LogFormatZerolog or LogFormatSlog
	LogFormat string
	// Enable verbose logging
	Verbose bool
}

// NewConfig creates a new Config with defaults taken from the environment.
func NewConfig() *Config {
	chunk, err := strconv.Atoi(sqlgen.GetEnvOrDefault("SQLGEN_CHUNK_SIZE", ""))
	if err != nil || chunk <= 0 {
		chunk = DefaultChunkSize
	}

	return &Config{
		Charset:   sqlgen.GetEnvOrDefault("SQLGEN_CHARSET", ""),
		ChunkSize: chunk,
		DSN:       sqlgen.GetEnvOrDefault("SQLGEN_DSN", "root@tcp(localhost:3306)/world"),
		LogPath:   sqlgen.GetEnvOrDefault("SQLGEN_LOG_PATH", ""),
		LogFormat: sqlgen.GetEnvOrDefault("SQLGEN_LOG_FORMAT", LogFormatZerolog),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return fmt.Errorf("at least one input file is required")
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", c.ChunkSize)
	}
	switch c.LogFormat {
	case "", LogFormatZerolog, LogFormatSlog:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Execute && c.DSN == "" {
		return fmt.Errorf("DSN is required to execute")
	}
	return nil
}
