package writer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Saver persists one named export document and reports where it landed.
type Saver interface {
	Save(name string, data []byte) (path string, err error)
}

// FileSaver writes export documents into a single output directory.
type FileSaver struct {
	dir    string
	logger *slog.Logger
}

// NewFileSaver creates a FileSaver, creating the output directory if needed.
func NewFileSaver(dir string, logger *slog.Logger) (*FileSaver, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &FileSaver{dir: dir, logger: logger}, nil
}

// Save writes data to <dir>/<name>, sanitizing the name first. Wallet names
// come from user input upstream and may contain path separators.
func (s *FileSaver) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, sanitizeName(name))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	s.logger.Debug("saved export file",
		"path", path,
		"bytes", len(data),
	)

	return path, nil
}

// sanitizeName replaces characters that are path separators or otherwise
// unsafe in file names on common platforms.
func sanitizeName(name string) string {
	r := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"\x00", "_",
	)
	cleaned := strings.TrimSpace(r.Replace(name))
	if cleaned == "" {
		cleaned = "export"
	}
	return cleaned
}
