package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/wdetools/sqlgen/contrib/rowdump"
)

func main() {
	// Create config with defaults
	config := rowdump.NewConfig()

	flag.StringVar(&config.Output, "output", "", "Output SQL file path (stdout when empty)")
	flag.StringVar(&config.Charset, "charset", config.Charset, "Charset of JSON and YAML inputs")
	flag.IntVar(&config.ChunkSize, "chunk", config.ChunkSize, "Rows per INSERT statement")
	flag.BoolVar(&config.Delete, "delete", false, "Delete rows by key before inserting them")
	flag.BoolVar(&config.Execute, "execute", false, "Run the script on the server")
	flag.StringVar(&config.DSN, "dsn", config.DSN, "MySQL DSN used with -execute")
	flag.StringVar(&config.LogPath, "log", config.LogPath, "Log file path (stderr when empty)")
	flag.StringVar(&config.LogFormat, "log-format", config.LogFormat, "Log format: zerolog or slog")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	config.Inputs = flag.Args()

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rowdump.Do(ctx, config); err != nil {
		log.Fatal(err)
	}
}
