package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-engine/internal/config"
	"github.com/iwvelando/mortgage-engine/pkg/adapters"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    config.LoggingConfig
		override  string
		expectErr bool
	}{
		{name: "defaults", config: config.LoggingConfig{}},
		{name: "console debug", config: config.LoggingConfig{Level: "debug", Format: "console"}},
		{name: "override wins", config: config.LoggingConfig{Level: "bogus"}, override: "warn"},
		{name: "warning alias", config: config.LoggingConfig{Level: "warning"}},
		{name: "invalid level", config: config.LoggingConfig{Level: "loud"}, expectErr: true},
		{name: "invalid format", config: config.LoggingConfig{Format: "xml"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.config, tt.override)
			if tt.expectErr {
				if err == nil {
					t.Errorf("initializeLogger() error = nil, expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			if logger == nil {
				t.Errorf("initializeLogger() returned a nil logger")
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "engine.log")
	logger, err := initializeLogger(config.LoggingConfig{Level: "info", Format: "json", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, expected it to contain the message", data)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", "", "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestUpdateCommand(t *testing.T) {
	out, err := execute(t, "update", "--state", "../../testdata/update-request.yaml", "--output-format", "json")
	if err != nil {
		t.Fatalf("update error = %v", err)
	}

	var response adapters.UpdateMortgageResponse
	if err := json.Unmarshal([]byte(out), &response); err != nil {
		t.Fatalf("failed to decode output: %v\n%s", err, out)
	}

	change, ok := response.ChangesApplied["prime_rate_change"]
	if !ok {
		t.Fatalf("changes_applied = %v, expected prime_rate_change", response.ChangesApplied)
	}
	if change.Old != 0.05 || change.New != 0.055 {
		t.Errorf("prime_rate_change = %+v, expected 0.05 -> 0.055", change)
	}

	state := response.UpdatedMortgageState
	if got := len(state.AmortizationTable); got != 24 {
		t.Errorf("len(amortization_table) = %d, expected 24", got)
	}
	if state.LastCalculationDate != "2025-02-01" {
		t.Errorf("last_calculation_date = %s, expected 2025-02-01", state.LastCalculationDate)
	}
	if got := len(state.CurrentMonthlyPayment.Breakdown); got != 2 {
		t.Errorf("len(breakdown) = %d, expected 2", got)
	}
}

func TestUpdateCommandFlagsOverrideFile(t *testing.T) {
	out, err := execute(t, "update", "--state", "../../testdata/update-request.yaml",
		"--date", "2025-03-01", "--cpi", "103", "--output-format", "csv")
	if err != nil {
		t.Fatalf("update error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "payment_number,date,payment,principal,interest,balance" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "97,2025-03-01,") {
		t.Errorf("first row = %q, expected payment 97 on 2025-03-01", lines[1])
	}
	if len(lines) != 25 {
		t.Errorf("len(lines) = %d, expected 25", len(lines))
	}
}

func TestUpdateCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing state flag", args: []string{"update"}},
		{name: "missing file", args: []string{"update", "--state", "does-not-exist.yaml"}},
		{name: "bad date", args: []string{"update", "--state", "../../testdata/update-request.yaml", "--date", "2025-13-01"}},
		{name: "bad output format", args: []string{"update", "--state", "../../testdata/update-request.yaml", "--output-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("update %v error = nil, expected an error", tt.args)
			}
		})
	}
}

func TestPaymentCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "csv",
			args:     []string{"payment", "--rate", "0.045", "--periods", "360", "--principal", "175000", "--output-format", "csv"},
			expected: "monthly_payment\n886.70\n",
		},
		{
			name:     "zero rate",
			args:     []string{"payment", "--periods", "12", "--principal", "1200", "--output-format", "csv"},
			expected: "monthly_payment\n100.00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("payment error = %v", err)
			}
			if out != tt.expected {
				t.Errorf("payment output = %q, expected %q", out, tt.expected)
			}
		})
	}

	if _, err := execute(t, "payment", "--periods", "0", "--principal", "1000"); err == nil {
		t.Errorf("payment with zero periods error = nil, expected an error")
	}
}
