package counter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Load reads the counter file. A missing file counts as 0.
func Load(path string) (int, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the configured counter file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading counter file: %w", err)
	}
	return Parse(data), nil
}

// Parse extracts the counter value from file content. Every non-digit
// character is dropped first; empty or out-of-range content yields 0.
func Parse(data []byte) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, string(data))
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Save writes n followed by a newline.
func Save(path string, n int) error {
	if n < 0 {
		return fmt.Errorf("counter must not be negative: %d", n)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(n)+"\n"), 0644); err != nil { //nolint:gosec // counter file is committed
		return fmt.Errorf("writing counter file: %w", err)
	}
	return nil
}

// Next returns the value following the one stored at path.
func Next(path string) (current, next int, err error) {
	current, err = Load(path)
	if err != nil {
		return 0, 0, err
	}
	return current, current + 1, nil
}
