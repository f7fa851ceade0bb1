//go:build windows

package platform

import (
	"os/exec"
	"syscall"
)

// StartCommandLine starts name with cmdLine as its raw command line.
func StartCommandLine(name, cmdLine string) error {
	cmd := exec.Command(name)
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: cmdLine}
	return start(cmd, name)
}
