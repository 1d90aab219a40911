package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FormatFileOperation formats the console line for a rewritten file.
// Unchanged files have no line and return false.
func FormatFileOperation(path string, st FileStatus, err error) (string, bool) {
	switch st {
	case StatusUpdated:
		return fmt.Sprintf("%s %s", color.GreenString("Updated:"), path), true
	case StatusFailed:
		return fmt.Sprintf("%s %s: %v", color.RedString("Error updating"), path, err), true
	default:
		return "", false
	}
}
