// Package debug exposes the contents of the debug log file.
package debug

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/babarot/saidan/internal/env"
	"github.com/mattn/go-isatty"
	"github.com/nxadm/tail"
)

// Logs displays logs either by showing existing content or following new
// entries
func Logs(w io.Writer, live bool) error {
	if live {
		return tailLiveLogs(w)
	}
	return showExistingLogs(w)
}

// tailLiveLogs follows log entries in real-time
func tailLiveLogs(w io.Writer) error {
	shouldFollow := isatty.IsTerminal(os.Stdout.Fd())
	tailConfig := tail.Config{
		ReOpen: shouldFollow,
		Follow: shouldFollow,
		Poll:   true,
		Logger: tail.DiscardingLogger,
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekEnd,
		},
	}

	t, err := tail.TailFile(env.SAIDAN_LOG_PATH, tailConfig)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("log file does not exist: try running some commands first")
		}
		return err
	}

	slog.Info("Live tail started")

	for line := range t.Lines {
		fmt.Fprintln(w, line.Text)
	}

	return nil
}

// showExistingLogs displays the current content of the log file
func showExistingLogs(w io.Writer) error {
	if _, err := os.Stat(env.SAIDAN_LOG_PATH); os.IsNotExist(err) {
		return fmt.Errorf("no log file exists yet: try running some commands first")
	}

	f, err := os.Open(env.SAIDAN_LOG_PATH)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(w, scanner.Text())
	}

	return scanner.Err()
}
