package config

import (
	"os"
	"testing"
)

func clearEnv() {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LIBRARY_DATA_DIR")
	os.Unsetenv("LOAN_PERIOD_DAYS")
	os.Unsetenv("DAILY_PENALTY")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
}

func TestConfig_Defaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}
	if cfg.DataDir != "data" {
		t.Errorf("expected default DataDir 'data', got %s", cfg.DataDir)
	}
	if cfg.LoanPeriodDays != 14 {
		t.Errorf("expected default LoanPeriodDays 14, got %d", cfg.LoanPeriodDays)
	}
	if cfg.DailyPenalty != 1.0 {
		t.Errorf("expected default DailyPenalty 1.0, got %g", cfg.DailyPenalty)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to be true by default")
	}
}

func TestConfig_FromEnvironment(t *testing.T) {
	clearEnv()
	os.Setenv("APP_ENV", "production")
	os.Setenv("LIBRARY_DATA_DIR", "/var/lib/librarium")
	os.Setenv("LOAN_PERIOD_DAYS", "21")
	os.Setenv("DAILY_PENALTY", "0.5")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !cfg.IsProduction() {
		t.Error("expected IsProduction to be true")
	}
	if cfg.DataDir != "/var/lib/librarium" {
		t.Errorf("expected DataDir to be set, got %s", cfg.DataDir)
	}
	if cfg.LoanPeriodDays != 21 {
		t.Errorf("expected LoanPeriodDays 21, got %d", cfg.LoanPeriodDays)
	}
	if cfg.DailyPenalty != 0.5 {
		t.Errorf("expected DailyPenalty 0.5, got %g", cfg.DailyPenalty)
	}
}

func TestConfig_RejectsInvalidPolicy(t *testing.T) {
	clearEnv()
	os.Setenv("LOAN_PERIOD_DAYS", "0")
	defer clearEnv()

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive loan period, got nil")
	}

	clearEnv()
	os.Setenv("DAILY_PENALTY", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative daily penalty, got nil")
	}
}
