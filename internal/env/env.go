package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	SAIDAN_CONFIG_PATH string

	SAIDAN_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	// Follow https://specifications.freedesktop.org/basedir-spec/latest/
	if e := os.Getenv("SAIDAN_CONFIG_PATH"); e != "" {
		SAIDAN_CONFIG_PATH = e
	} else {
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			configDir = filepath.Join(homeDir, defaultXDGConfigDirname)
		}
		SAIDAN_CONFIG_PATH = filepath.Join(configDir, "saidan", "config.yaml")
	}

	if e := os.Getenv("SAIDAN_LOG_PATH"); e != "" {
		SAIDAN_LOG_PATH = e
	} else {
		dataDir := os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				panic(err)
			}
			dataDir = filepath.Join(homeDir, defaultXDGDataDirname)
		}
		SAIDAN_LOG_PATH = filepath.Join(dataDir, "saidan", "debug.log")
	}
}
