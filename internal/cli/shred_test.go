package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/babarot/saidan/internal/config"
)

func TestValidatePath(t *testing.T) {
	c := &CLI{config: config.Config{
		Core: config.Core{
			ProtectedPaths: []string{"/srv/data"},
		},
	}}

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"/", true},
		{"/home", true},
		{"/usr", true},
		{"/etc", true},
		{"/var", true},
		{"/tmp", true},
		{"/srv/data", true},          // from config
		{"/srv/data/", true},         // trailing separator
		{"/home/user/file.txt", false},
		{"/srv/data/sub", false},     // children are fair game
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := c.validatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestShredPathSkipsNonRegularTargets(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	if err := os.WriteFile(target, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "alias")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported here: %v", err)
	}

	c := &CLI{config: config.Config{}}
	if err := c.shredPath(link); err != nil {
		t.Fatalf("shredPath() error = %v, want nil", err)
	}

	// The link is left alone, and the file it points at is untouched.
	if _, err := os.Lstat(link); err != nil {
		t.Errorf("symlink was removed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("symlink target was altered: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("symlink target content = %q, want %q", data, "data")
	}
}
