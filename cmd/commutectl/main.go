// Command commutectl drives the enrollment console from a terminal. Session
// state and the rewards pool live in a local profile file.
package main

import (
	"context"
	"os"

	"github.com/sethvargo/go-envconfig"

	"github.com/fleetdemo/commute-benefits/pkg/logger"
)

func main() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	log := logger.Init(logger.Options{
		Level:   level,
		Pretty:  true,
		Output:  os.Stderr,
		Service: "commutectl",
	})
	if err := run(context.Background(), os.Args[1:], envconfig.OsLookuper(), os.Stdout, log); err != nil {
		os.Exit(1)
	}
}
