package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/babarot/saidan/internal/shred"
	"github.com/babarot/saidan/internal/ui"
	"github.com/google/uuid"
)

// ShredPaths destroys the named filesystem paths, one at a time. Every
// failure is terminal for the whole invocation; whatever a failing step
// left behind stays as it is.
func (c *CLI) ShredPaths(args []string) error {
	slog.Debug("cli.shred started")
	defer slog.Debug("cli.shred finished")

	if len(args) == 0 {
		return errors.New("too few arguments")
	}

	for _, arg := range args {
		if err := c.shredPath(arg); err != nil {
			return fmt.Errorf("failed to shred %s: %w", arg, err)
		}
	}

	return nil
}

func (c *CLI) shredPath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if !c.option.Rm.Force {
				return fmt.Errorf("%s: no such file or directory", path)
			}
			return nil
		}
		return err
	}

	if err := c.validatePath(path); err != nil {
		return err
	}

	if info.IsDir() && !c.option.Rm.Recursive && !c.option.Rm.Recursive2 {
		return fmt.Errorf("%s: is a directory (use -r to shred recursively)", path)
	}

	// Symlinks, sockets, pipes and devices carry no overwritable content;
	// they are left alone rather than silently reported as shredded.
	if !info.IsDir() && !info.Mode().IsRegular() {
		if c.option.Rm.Verbose || c.config.Core.Shred.Verbose {
			fmt.Printf("skipped '%s': not a regular file\n", path)
		}
		return nil
	}

	if c.config.Core.Shred.Confirm && !c.option.Rm.Force {
		if !ui.Confirm(fmt.Sprintf("Shred %q? This cannot be undone.", path)) {
			return errors.New("canceled")
		}
	}

	opID := uuid.NewString()
	slog.Debug("shredding path", "op_id", opID, "path", path, "dir", info.IsDir())

	if info.IsDir() {
		if err := shred.Tree(path); err != nil {
			return err
		}
	} else {
		if err := shred.Path(path).Shred(); err != nil {
			return err
		}
	}

	if c.option.Rm.Verbose || c.config.Core.Shred.Verbose {
		if info.IsDir() {
			fmt.Printf("shredded directory '%s'\n", path)
		} else {
			fmt.Printf("shredded '%s'\n", path)
		}
	}

	return nil
}

// validatePath checks if path is valid for shredding
func (c *CLI) validatePath(path string) error {
	// Common paths that should never be shredded
	protected := []string{
		"/",
		"/home",
		"/usr",
		"/etc",
		"/var",
		"/tmp",
	}
	protected = append(protected, c.config.Core.ProtectedPaths...)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for _, p := range protected {
		if absPath == filepath.Clean(p) {
			return fmt.Errorf("cannot shred protected path: %s", path)
		}
	}

	return nil
}
