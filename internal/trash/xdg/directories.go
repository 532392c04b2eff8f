// Package xdg locates trash directories and reads trashinfo records
// following the XDG trash specification. Only the reading side of the spec
// is implemented: this tool consumes an existing trash, it never fills one.
package xdg

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/moby/sys/mountinfo"
)

// Skip file systems that can't have trash directories
var skipFSTypes = map[string]bool{
	"proc":        true,
	"sysfs":       true,
	"devtmpfs":    true,
	"devpts":      true,
	"tmpfs":       true,
	"cgroup":      true,
	"cgroup2":     true,
	"pstore":      true,
	"securityfs":  true,
	"debugfs":     true,
	"configfs":    true,
	"fusectl":     true,
	"bpf":         true,
	"nsfs":        true,
	"efivarfs":    true,
	"hugetlbfs":   true,
	"mqueue":      true,
	"binfmt_misc": true,
}

// HomeTrashDir returns the home trash directory ($XDG_DATA_HOME/Trash or
// ~/.local/share/Trash)
func HomeTrashDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "Trash"), nil
}

// FindAllTrashDirectories returns every trash directory visible to the
// current user: the home trash plus $topdir/.Trash/$uid and
// $topdir/.Trash-$uid on each writable mount point
func FindAllTrashDirectories() ([]string, error) {
	var dirs []string

	home, err := HomeTrashDir()
	if err != nil {
		return nil, err
	}
	if fi, err := os.Stat(home); err == nil && fi.IsDir() {
		dirs = append(dirs, home)
	}

	mounts, err := getMountPoints()
	if err != nil {
		// Home trash is still usable without mount information
		slog.Warn("failed to scan mount points", "error", err)
		return dirs, nil
	}

	uid := os.Getuid()
	uidStr := strconv.Itoa(uid)

	for _, mount := range mounts {
		// Check for $topdir/.Trash/$uid
		trashPath := filepath.Join(mount, ".Trash", uidStr)
		if isValidExternalTrash(trashPath) {
			dirs = append(dirs, trashPath)
			continue
		}

		// Check for $topdir/.Trash-$uid
		trashPath = filepath.Join(mount, fmt.Sprintf(".Trash-%d", uid))
		if isValidExternalTrash(trashPath) {
			dirs = append(dirs, trashPath)
		}
	}

	return dirs, nil
}

// getMountPoints returns a list of valid mount points that can contain
// trash directories
func getMountPoints() ([]string, error) {
	mounts, err := mountinfo.GetMounts(func(info *mountinfo.Info) (skip, stop bool) {
		// Skip known unsuitable filesystems
		if skipFSTypes[info.FSType] {
			return true, false
		}

		// Skip read-only filesystems
		opts := strings.Split(info.Options, ",")
		for _, opt := range opts {
			if opt == "ro" {
				return true, false
			}
		}

		return false, false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get mount info: %w", err)
	}

	seen := make(map[string]bool)
	var points []string

	for _, m := range mounts {
		if !seen[m.Mountpoint] {
			points = append(points, m.Mountpoint)
			seen[m.Mountpoint] = true
		}
	}

	return points, nil
}

// isValidExternalTrash checks if a directory is a valid trash directory
// according to the XDG spec
func isValidExternalTrash(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}

	// Must be a directory, not a symbolic link
	if !info.IsDir() || info.Mode()&os.ModeSymlink != 0 {
		return false
	}

	// If it's a .Trash directory (not .Trash-$uid), check sticky bit
	if filepath.Base(filepath.Dir(path)) == ".Trash" {
		parent, err := os.Lstat(filepath.Dir(path))
		if err != nil || parent.Mode()&os.ModeSticky == 0 {
			slog.Debug("missing sticky bit", "path", filepath.Dir(path))
			return false
		}
	}

	// It must at least hold a files directory to have anything to shred
	fi, err := os.Stat(filepath.Join(path, "files"))
	return err == nil && fi.IsDir()
}
