package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/babarot/saidan/internal/config"
	"github.com/babarot/saidan/internal/debug"
	"github.com/babarot/saidan/internal/env"
	"github.com/babarot/saidan/internal/trash"
	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"github.com/rs/xid"
)

type Option struct {
	Trash  bool   `short:"t" long:"trash" description:"Shred items in the trash instead of paths"`
	List   bool   `short:"l" long:"list" description:"List trashed items eligible for shredding"`
	Config string `long:"config" description:"Path to config file" default:""`

	Meta MetaOption `group:"Meta Options"`
	Rm   RmOption   `group:"Compatible (rm) Options"`
}

type MetaOption struct {
	Version bool   `short:"V" long:"version" description:"Show version"`
	Debug   string `long:"debug" description:"View debug logs (default: \"full\")" optional-value:"full" optional:"yes" choice:"full" choice:"live"`
}

// RmOption provides compatibility with rm command options
type RmOption struct {
	Interactive bool `short:"i" description:"(dummy) prompt before every removal"`
	Recursive   bool `short:"r" long:"recursive" description:"shred directories and their contents recursively"`
	Recursive2  bool `short:"R" description:"same as -r"`
	Force       bool `short:"f" long:"force" description:"ignore nonexistent files, never prompt"`
	Directory   bool `short:"d" long:"dir" description:"(dummy) remove empty directories"`
	Verbose     bool `short:"v" long:"verbose" description:"explain what is being done"`
}

type CLI struct {
	version Version
	option  Option
	config  config.Config
	runID   string
}

var runID = sync.OnceValue(func() string {
	id := xid.New().String()
	return id
})

func Run(v Version) error {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	parser.Name = v.AppName
	parser.Usage = "[-t | -l | files...]"
	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	logDir := filepath.Dir(env.SAIDAN_LOG_PATH)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		err := os.MkdirAll(logDir, 0755)
		if err != nil {
			return err
		}
	}

	var w io.Writer
	if file, err := os.OpenFile(env.SAIDAN_LOG_PATH, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = file
	} else {
		w = os.Stderr
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           log.DebugLevel,
		Formatter: func() log.Formatter {
			if strings.ToLower(opt.Meta.Debug) == "json" {
				return log.JSONFormatter
			}
			return log.TextFormatter
		}(),
	})
	logger.SetOutput(w)
	logger.With("run_id", runID())
	slog.SetDefault(slog.New(logger))

	defer slog.Debug("main function finished\n\n\n")
	slog.Debug("main function started", "version", v.Version, "revision", v.Revision, "buildDate", v.BuildDate)

	cfg, err := config.Parse(opt.Config)
	if err != nil {
		return err
	}
	slog.Debug("config parsed", "config", pp.Sprint(cfg))

	cli := CLI{
		version: v,
		option:  opt,
		config:  cfg,
		runID:   runID(),
	}

	if err := cli.Run(args); err != nil {
		slog.Error("exit", "error", fmt.Errorf("cli.run failed: %w", err))
		return err
	}
	return nil
}

func (c CLI) Run(args []string) error {
	switch {
	case c.option.Meta.Version:
		fmt.Fprint(os.Stdout, c.version.Print())
		return nil

	case c.option.List:
		return c.List()

	case c.option.Trash:
		return c.ShredTrash(args)

	default:
		switch c.option.Meta.Debug {
		case "live":
			return debug.Logs(os.Stdout, true)
		case "full":
			return debug.Logs(os.Stdout, false)
		}
		return c.ShredPaths(args)
	}
}

// trashManager builds the manager lazily: shredding plain paths must keep
// working even when no trash directory exists at all.
func (c CLI) trashManager() (*trash.Manager, error) {
	manager, err := trash.NewManager(c.config.History)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize trash manager: %w", err)
	}
	return manager, nil
}
