package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/congo-pay/bankaccount/internal/config"
	"github.com/congo-pay/bankaccount/internal/logging"
	"github.com/congo-pay/bankaccount/internal/report"
	"github.com/congo-pay/bankaccount/internal/scenario"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	var (
		flagConfig string
		flagLevel  string
		flagMode   string
	)

	pflag.StringVarP(&flagConfig, "config", "c", "", "path to YAML file with balances, deposits and withdrawals")
	pflag.StringVarP(&flagLevel, "level", "l", "", "log output level (overrides config)")
	pflag.StringVarP(&flagMode, "mode", "m", "", "case generation mode: exhaustive or pairwise (overrides config)")

	pflag.Parse()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return failure
	}
	if flagLevel != "" {
		cfg.LogLevel = strings.ToLower(flagLevel)
	}
	if flagMode != "" {
		cfg.Mode = strings.ToLower(flagMode)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return failure
	}

	logger := logging.New(cfg.LogLevel)

	dims, err := cfg.Dimensions()
	if err != nil {
		logger.Error("parse dimensions", "error", err)
		return failure
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cases := cfg.Cases(dims)
	logger.Info("running scenario matrix",
		"mode", cfg.Mode,
		"balances", len(dims.Balances),
		"deposits", len(dims.Deposits),
		"withdrawals", len(dims.Withdrawals),
		"cases", len(cases),
	)

	reporter := report.NewLoggerReporter(logger)
	outcomes, err := scenario.RunAll(ctx, cases, reporter)
	if err != nil {
		logger.Error("scenario run interrupted", "completed", len(outcomes), "error", err)
		return failure
	}

	logger.Info("scenario matrix finished", "summary", reporter.Summary())

	if err := scenario.Verify(outcomes); err != nil {
		logger.Error("verification failed", "error", err)
		return failure
	}

	logger.Info("verification passed", "cases", len(outcomes))
	return success
}
