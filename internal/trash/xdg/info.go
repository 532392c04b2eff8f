package xdg

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// According to XDG spec
	trashInfoHeader = "[Trash Info]"
	timeFormat      = "2006-01-02T15:04:05"
)

// TrashInfo represents the contents of a .trashinfo file
type TrashInfo struct {
	// Path is the original path of the file, can be absolute or relative
	Path string

	// OriginalName is just the base name of the file
	OriginalName string

	// DeletionDate is when the file was moved to trash
	DeletionDate time.Time

	// MountRoot is the root path of the mount point containing this trash.
	// This is used to resolve relative paths
	MountRoot string
}

// NewInfo creates a TrashInfo from a reader
func NewInfo(r io.Reader) (*TrashInfo, error) {
	scanner := bufio.NewScanner(r)
	info := &TrashInfo{}
	var headerFound bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if line == trashInfoHeader {
			headerFound = true
			continue
		}

		// Skip until header is found
		if !headerFound {
			continue
		}

		// Parse key=value pairs
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "Path":
			path, err := url.QueryUnescape(value)
			if err != nil {
				return nil, fmt.Errorf("invalid Path encoding: %w", err)
			}
			info.Path = path
			info.OriginalName = filepath.Base(path)

		case "DeletionDate":
			date, err := time.ParseInLocation(timeFormat, value, time.Local)
			if err != nil {
				return nil, fmt.Errorf("invalid DeletionDate format: %w", err)
			}
			info.DeletionDate = date
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading info file: %w", err)
	}

	// Validate required fields
	if !headerFound {
		return nil, fmt.Errorf("missing %s header", trashInfoHeader)
	}
	if info.Path == "" {
		return nil, fmt.Errorf("missing Path field")
	}
	if info.DeletionDate.IsZero() {
		return nil, fmt.Errorf("missing DeletionDate field")
	}

	return info, nil
}

// GetAbsolutePath returns the absolute path of the file.
// If the path is relative, it is resolved against the mount root
func (i *TrashInfo) GetAbsolutePath() string {
	if filepath.IsAbs(i.Path) {
		return i.Path
	}

	if i.MountRoot != "" {
		return filepath.Join(i.MountRoot, i.Path)
	}

	return i.Path
}

// LoadInfo loads and parses a .trashinfo file
func LoadInfo(path string) (*TrashInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open info file: %w", err)
	}
	defer f.Close()

	info, err := NewInfo(f)
	if err != nil {
		return nil, err
	}

	return info, nil
}
