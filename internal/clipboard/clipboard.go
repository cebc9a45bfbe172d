// Package clipboard copies values to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"cryptonoise/internal/domain"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard not supported on this system")

// System is the OS clipboard.
type System struct{}

// Copy replaces the clipboard contents with text.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

var _ domain.Clipboard = System{}
