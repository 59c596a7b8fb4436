package sysops

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard reads the host clipboard.
type SystemClipboard struct{}

// Read returns the clipboard's text content. Empty string with nil
// error means the clipboard holds no text.
func (SystemClipboard) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}
