//go:build !windows

package platform

import "fmt"

// StartCommandLine is only meaningful on Windows, where a process receives
// one command line instead of an argument vector.
func StartCommandLine(name, cmdLine string) error {
	return fmt.Errorf("start %s: raw command lines are only supported on windows", name)
}
