// Package transport loads the static transportation dataset injected
// into the assistant's prompt. The file is read once at startup and the
// contents are held immutably for the process lifetime.
package transport

import (
	"fmt"
	"os"
)

// Load reads the transportation data file. A missing file is a startup
// failure: the assistant cannot answer route queries without it.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("transportation data file not found at %s: %w", path, err)
	}
	return string(data), nil
}
