//go:build !windows

package notify

import (
	"fmt"
	"os"
)

type stderrNotifier struct{}

// System returns the platform notifier: a line on standard error.
func System() Notifier { return stderrNotifier{} }

func (stderrNotifier) Warn(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}
