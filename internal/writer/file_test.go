package writer

import (
	"os"
	"path/filepath"
	"testing"
)

// TestFileSaverSave tests basic delivery to disk.
func TestFileSaverSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileSaver(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := s.Save("Ledger - Transactions.csv", []byte("Date,Type\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != filepath.Join(dir, "Ledger - Transactions.csv") {
		t.Errorf("path = %q, want it under %q", path, dir)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "Date,Type\n" {
		t.Errorf("content = %q, want %q", string(data), "Date,Type\n")
	}
}

// TestFileSaverCreatesDir verifies the output directory is created on demand.
func TestFileSaverCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "koinly")

	if _, err := NewFileSaver(dir, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("output dir was not created: %v", err)
	}
}

// TestSanitizeName tests file name sanitization.
func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Ledger - Transactions.csv", "Ledger - Transactions.csv"},
		{"slash", "BTC/ETH Pool - Transactions.csv", "BTC_ETH Pool - Transactions.csv"},
		{"backslash", `a\b`, "a_b"},
		{"colon", "wallet: main", "wallet_ main"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"empty falls back", "", "export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeName(tt.in); got != tt.want {
				t.Errorf("sanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
