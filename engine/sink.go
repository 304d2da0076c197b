package engine

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives committed messages.
type Sink interface {
	Write(msg string) error
}

// FileSink overwrites a single file with each committed message.
type FileSink struct {
	Path string
}

func (s FileSink) Write(msg string) error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, []byte(msg), 0600); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}
