package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

const fallbackWidth = 80

func validateLayoutPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("layout file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("layout file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("layout path %s is a directory", abs)
	}

	return nil
}

// terminalWidth returns the width of writer when it is a terminal, and
// fallbackWidth otherwise.
func terminalWidth(writer io.Writer) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}
