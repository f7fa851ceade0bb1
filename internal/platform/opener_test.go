package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRun struct {
	name string
	args []string
}

type memLogger struct{ debug []string }

func (l *memLogger) Print(string)   {}
func (l *memLogger) Trace(string)   {}
func (l *memLogger) Debug(m string) { l.debug = append(l.debug, m) }
func (l *memLogger) Info(string)    {}
func (l *memLogger) Warning(string) {}
func (l *memLogger) Error(string)   {}
func (l *memLogger) Fatal(string)   {}

func TestForOS(t *testing.T) {
	cases := []struct {
		goos  string
		runs  []recordedRun
		lines []string
	}{
		{"darwin", []recordedRun{{"open", []string{`/tmp/out`}}}, nil},
		{"windows", nil, []string{`cmd /c start "" "/tmp/out"`}},
		{"linux", nil, nil},
		{"freebsd", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.goos, func(t *testing.T) {
			var runs []recordedRun
			var lines []string
			run := func(name string, args ...string) error {
				runs = append(runs, recordedRun{name, args})
				return nil
			}
			runLine := func(name, cmdLine string) error {
				assert.Equal(t, "cmd", name)
				lines = append(lines, cmdLine)
				return nil
			}
			log := &memLogger{}

			err := ForOS(tc.goos, run, runLine, log).OpenDirectory("/tmp/out")
			require.NoError(t, err)
			assert.Equal(t, tc.runs, runs)
			assert.Equal(t, tc.lines, lines)
			if tc.runs == nil && tc.lines == nil {
				assert.Equal(t, []string{"output directory: /tmp/out"}, log.debug)
			}
		})
	}
}

func TestWindowsOpener_QuotesPath(t *testing.T) {
	cases := map[string]string{
		`C:\proj&x`:        `cmd /c start "" "C:\proj&x"`,
		`C:\My Projects\a`: `cmd /c start "" "C:\My Projects\a"`,
		`D:\a|b^c`:         `cmd /c start "" "D:\a|b^c"`,
	}
	for path, want := range cases {
		var got string
		runLine := func(name, cmdLine string) error {
			got = cmdLine
			return nil
		}
		require.NoError(t, ForOS("windows", nil, runLine, nil).OpenDirectory(path))
		assert.Equal(t, want, got)
	}
}

func TestWindowsStartLine_RejectsQuote(t *testing.T) {
	_, err := WindowsStartLine(`C:\a"b`)
	assert.Error(t, err)
}

func TestForOS_RunnerError(t *testing.T) {
	run := func(name string, args ...string) error { return errors.New("exec: \"open\": not found") }

	err := ForOS("darwin", run, nil, nil).OpenDirectory("/tmp/out")
	assert.EqualError(t, err, "exec: \"open\": not found")
}

func TestForOS_NilLogger(t *testing.T) {
	assert.NoError(t, ForOS("plan9", nil, nil, nil).OpenDirectory("/tmp/out"))
}
