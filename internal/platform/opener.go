// Package platform reveals directories in the host's native file browser.
package platform

import (
	"fmt"
	"os/exec"
	goruntime "runtime"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// Opener shows a directory to the user.
type Opener interface {
	OpenDirectory(path string) error
}

// Runner starts an external command without waiting for it to finish.
type Runner func(name string, args ...string) error

// LineRunner starts name with cmdLine passed to the process verbatim,
// without per-argument escaping. cmdLine includes the program name.
type LineRunner func(name, cmdLine string) error

// StartCommand starts name and reaps it in the background.
func StartCommand(name string, args ...string) error {
	return start(exec.Command(name, args...), name)
}

func start(cmd *exec.Cmd, name string) error {
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// NewOpener picks the opener for the running OS.
func NewOpener(log logger.Logger) Opener {
	return ForOS(goruntime.GOOS, StartCommand, StartCommandLine, log)
}

// ForOS picks the opener for goos. Platforms without a known file browser
// command get an opener that only logs.
func ForOS(goos string, run Runner, runLine LineRunner, log logger.Logger) Opener {
	switch goos {
	case "darwin":
		return &darwinOpener{run: run}
	case "windows":
		return &windowsOpener{runLine: runLine}
	default:
		return &logOnlyOpener{log: log}
	}
}

type darwinOpener struct {
	run Runner
}

func (o *darwinOpener) OpenDirectory(path string) error {
	return o.run("open", path)
}

type windowsOpener struct {
	runLine LineRunner
}

func (o *windowsOpener) OpenDirectory(path string) error {
	line, err := WindowsStartLine(path)
	if err != nil {
		return err
	}
	return o.runLine("cmd", line)
}

// WindowsStartLine is the cmd.exe command line that opens path in Explorer.
// The path is always quoted so cmd metacharacters such as & and | in it are
// taken literally. The empty "" is the window title start expects first.
func WindowsStartLine(path string) (string, error) {
	if strings.ContainsAny(path, "\"\r\n") {
		return "", fmt.Errorf("path %q cannot be passed to cmd start", path)
	}
	return `cmd /c start "" "` + path + `"`, nil
}

type logOnlyOpener struct {
	log logger.Logger
}

func (o *logOnlyOpener) OpenDirectory(path string) error {
	if o.log != nil {
		o.log.Debug("output directory: " + path)
	}
	return nil
}
