package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/congo-pay/bankaccount/internal/scenario"
)

const (
	// ModeExhaustive runs every combination of the configured values.
	ModeExhaustive = "exhaustive"
	// ModePairwise runs a set of cases covering every pair of values.
	ModePairwise = "pairwise"

	defaultLogLevel = "info"
	defaultMode     = ModeExhaustive

	logLevelEnvVar    = "LOG_LEVEL"
	modeEnvVar        = "MATRIX_MODE"
	balancesEnvVar    = "MATRIX_BALANCES"
	depositsEnvVar    = "MATRIX_DEPOSITS"
	withdrawalsEnvVar = "MATRIX_WITHDRAWALS"
)

var validate = validator.New()

// Config captures the scenario matrix settings. Amounts are kept as strings
// until Dimensions so that no precision is lost while decoding.
type Config struct {
	LogLevel    string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	Mode        string   `yaml:"mode" validate:"oneof=exhaustive pairwise"`
	Balances    []string `yaml:"balances" validate:"min=1,dive,numeric"`
	Deposits    []string `yaml:"deposits" validate:"min=1,dive,numeric"`
	Withdrawals []string `yaml:"withdrawals" validate:"min=1,dive,numeric"`
}

// Default returns a matrix probing the tier thresholds with valid and
// out-of-domain amounts.
func Default() Config {
	return Config{
		LogLevel:    defaultLogLevel,
		Mode:        defaultMode,
		Balances:    []string{"-500", "0", "10", "99.99", "100", "100.01", "999.99", "1000", "1000.01"},
		Deposits:    []string{"-10", "0", "0.01", "10", "900"},
		Withdrawals: []string{"-10", "0", "0.01", "10", "150"},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when empty), then environment variables, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.LogLevel = strings.ToLower(getEnv(logLevelEnvVar, cfg.LogLevel))
	cfg.Mode = strings.ToLower(getEnv(modeEnvVar, cfg.Mode))
	cfg.Balances = getEnvList(balancesEnvVar, cfg.Balances)
	cfg.Deposits = getEnvList(depositsEnvVar, cfg.Deposits)
	cfg.Withdrawals = getEnvList(withdrawalsEnvVar, cfg.Withdrawals)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Dimensions parses the configured amounts.
func (c Config) Dimensions() (scenario.Dimensions, error) {
	balances, err := parseAmounts("balances", c.Balances)
	if err != nil {
		return scenario.Dimensions{}, err
	}
	deposits, err := parseAmounts("deposits", c.Deposits)
	if err != nil {
		return scenario.Dimensions{}, err
	}
	withdrawals, err := parseAmounts("withdrawals", c.Withdrawals)
	if err != nil {
		return scenario.Dimensions{}, err
	}
	return scenario.Dimensions{Balances: balances, Deposits: deposits, Withdrawals: withdrawals}, nil
}

// Cases generates the cases for d according to the configured mode.
func (c Config) Cases(d scenario.Dimensions) []scenario.Case {
	if c.Mode == ModePairwise {
		return scenario.Pairwise(d)
	}
	return scenario.Exhaustive(d)
}

func parseAmounts(field string, values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", field, v, err)
		}
		out = append(out, d)
	}
	return out, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
