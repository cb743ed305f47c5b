package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/finance"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	file := writeConfig(t, `
[ledger]
path = "/data/ledger.csv"
currency = "eur"
`)

	tests := []struct {
		name  string
		env   map[string]string
		path  string
		flags finance.Config
		want  finance.Config
	}{
		{
			name: "defaults",
			want: finance.DefaultConfig(),
		},
		{
			name: "file",
			path: file,
			want: finance.Config{Path: "/data/ledger.csv", Currency: "EUR"},
		},
		{
			name: "environment over file",
			env:  map[string]string{EnvLedgerCurrency: "GBP"},
			path: file,
			want: finance.Config{Path: "/data/ledger.csv", Currency: "GBP"},
		},
		{
			name:  "flags over everything",
			env:   map[string]string{EnvLedgerPath: "/env.csv"},
			path:  file,
			flags: finance.Config{Path: "flag.csv"},
			want:  finance.Config{Path: "flag.csv", Currency: "EUR"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			t.Setenv(EnvLedgerPath, "")
			t.Setenv(EnvLedgerCurrency, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := LoadConfig(tt.path, tt.flags)
			if err != nil {
				t.Fatalf("LoadConfig() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_DefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv(EnvLedgerPath, "")
	t.Setenv(EnvLedgerCurrency, "")
	if err := os.MkdirAll(filepath.Join(home, "fin"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, "fin", "config.toml"), []byte("[ledger]\ncurrency = \"CHF\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig("", finance.Config{})
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if want := (finance.Config{Path: finance.DefaultLedgerFile, Currency: "CHF"}); got != want {
		t.Errorf("LoadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvLedgerPath, "")
	t.Setenv(EnvLedgerCurrency, "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), finance.Config{}); err == nil {
		t.Errorf("LoadConfig() with a missing explicit file did not fail")
	}
	if _, err := LoadConfig("", finance.Config{Currency: "NOPE"}); err == nil {
		t.Errorf("LoadConfig() with an unknown currency did not fail")
	}
	if _, err := LoadConfig(writeConfig(t, "[ledger\n"), finance.Config{}); err == nil {
		t.Errorf("LoadConfig() with a malformed file did not fail")
	}
}
