// Command payflow processes a CSV of transactions in one pass and writes the
// final per-client account state to stdout:
//
//	payflow transactions.csv > accounts.csv
//
// Rejected transactions and malformed rows are logged to stderr and skipped.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/payflow/payflow/internal/alert"
	"github.com/payflow/payflow/internal/config"
	"github.com/payflow/payflow/internal/csvio"
	"github.com/payflow/payflow/internal/logging"
	"github.com/payflow/payflow/internal/processor"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: payflow [FILE].csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)

	file, err := os.Open(os.Args[1])
	if err != nil {
		logger.Error("open input file", "path", os.Args[1], "error", err)
		os.Exit(1)
	}
	defer file.Close()

	out := bufio.NewWriter(os.Stdout)

	p := processor.New(logger, alert.NewLoggerNotifier(logger))
	if err := p.Run(context.Background(), csvio.NewReader(bufio.NewReader(file)), csvio.NewWriter(out)); err != nil {
		logger.Error("processing failed", "error", err)
		os.Exit(1)
	}

	if err := out.Flush(); err != nil {
		logger.Error("flush report", "error", err)
		os.Exit(1)
	}
}
