package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/sports-snapshots/internal/config"
	"github.com/preston-bernstein/sports-snapshots/internal/logging"
	"github.com/preston-bernstein/sports-snapshots/internal/runner"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_FETCHER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [odds|standings]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "sports-snapshots",
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "load config", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(ctx, cfg, logger)
	defer r.Close()

	if err := r.Run(ctx, runner.ParseMode(flag.Arg(0))); err != nil {
		return 1
	}
	return 0
}
