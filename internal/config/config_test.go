package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{logLevelEnvVar, modeEnvVar, balancesEnvVar, depositsEnvVar, withdrawalsEnvVar} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matrix.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != defaultLogLevel || cfg.Mode != ModeExhaustive {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	d, err := cfg.Dimensions()
	if err != nil {
		t.Fatalf("dimensions: %v", err)
	}
	if len(d.Balances) != len(cfg.Balances) || len(d.Deposits) != len(cfg.Deposits) || len(d.Withdrawals) != len(cfg.Withdrawals) {
		t.Fatalf("dimension sizes do not match config: %+v", d)
	}
	if got := len(cfg.Cases(d)); got != len(d.Balances)*len(d.Deposits)*len(d.Withdrawals) {
		t.Fatalf("expected exhaustive case count, got %d", got)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
log_level: debug
mode: pairwise
balances: ["0", "99.99", "100"]
deposits: ["0.01", "900"]
withdrawals: ["10"]
`)
	t.Setenv(withdrawalsEnvVar, " 0.01, 150 ,")
	t.Setenv(logLevelEnvVar, "WARN")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Mode != ModePairwise {
		t.Fatalf("expected pairwise mode from file, got %s", cfg.Mode)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected env log level to win, got %s", cfg.LogLevel)
	}
	if strings.Join(cfg.Balances, "|") != "0|99.99|100" {
		t.Fatalf("unexpected balances: %v", cfg.Balances)
	}
	if strings.Join(cfg.Withdrawals, "|") != "0.01|150" {
		t.Fatalf("unexpected withdrawals: %v", cfg.Withdrawals)
	}

	d, err := cfg.Dimensions()
	if err != nil {
		t.Fatalf("dimensions: %v", err)
	}
	if d.Balances[1].String() != "99.99" {
		t.Fatalf("expected exact 99.99, got %s", d.Balances[1])
	}
	if got := len(cfg.Cases(d)); got > 12 {
		t.Fatalf("pairwise produced more cases than the product: %d", got)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{name: "mode", key: modeEnvVar, val: "random", want: "Mode"},
		{name: "level", key: logLevelEnvVar, val: "trace", want: "LogLevel"},
		{name: "amount", key: balancesEnvVar, val: "10,abc", want: "Balances"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.key, test.val)

			_, err := Load("")
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("expected error to mention %s, got %v", test.want, err)
			}
		})
	}
}

func TestLoadRejectsEmptyDimension(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "deposits: []\n")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "Deposits") {
		t.Fatalf("expected empty deposits to be rejected, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "balances: [unterminated\n")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
