package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func makeTrashDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, sub := range []string{"files", "info"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0700); err != nil {
			t.Fatal(err)
		}
	}
	for i, name := range names {
		if err := os.WriteFile(filepath.Join(dir, "files", name), []byte("data"), 0644); err != nil {
			t.Fatal(err)
		}
		deleted := time.Now().Add(-time.Duration(i) * time.Hour).Format("2006-01-02T15:04:05")
		info := fmt.Sprintf("[Trash Info]\nPath=/home/user/%s\nDeletionDate=%s\n", name, deleted)
		if err := os.WriteFile(filepath.Join(dir, "info", name+".trashinfo"), []byte(info), 0600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListDirectory(t *testing.T) {
	dir := makeTrashDir(t, "a.txt", "b.txt")

	// An orphaned content file without a record must be invisible
	if err := os.WriteFile(filepath.Join(dir, "files", "orphan"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	items, err := listDirectory(dir)
	if err != nil {
		t.Fatalf("listDirectory() error = %v, want nil", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.InfoPath != filepath.Join(dir, "info", item.Name+".trashinfo") {
			t.Errorf("InfoPath = %q does not match item %q", item.InfoPath, item.Name)
		}
		if !item.Exists() {
			t.Errorf("item %q reports missing content", item.Name)
		}
		if item.OriginalPath != "/home/user/"+item.Name {
			t.Errorf("OriginalPath = %q, want /home/user/%s", item.OriginalPath, item.Name)
		}
	}
}

func TestListDirectorySizesTrees(t *testing.T) {
	dir := makeTrashDir(t)

	base := filepath.Join(dir, "files", "bundle")
	for _, f := range []string{"one.txt", "sub/two.txt"} {
		path := filepath.Join(base, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(strings.Repeat("x", 100)), 0644); err != nil {
			t.Fatal(err)
		}
	}
	info := "[Trash Info]\nPath=/home/user/bundle\nDeletionDate=2025-01-15T10:30:00\n"
	if err := os.WriteFile(filepath.Join(dir, "info", "bundle.trashinfo"), []byte(info), 0600); err != nil {
		t.Fatal(err)
	}

	items, err := listDirectory(dir)
	if err != nil {
		t.Fatalf("listDirectory() error = %v, want nil", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if !items[0].IsDir {
		t.Error("bundle should be reported as a directory")
	}
	// The size of a trashed tree is the sum of its contents, not the
	// directory inode's stat size.
	if items[0].Size != 200 {
		t.Errorf("Size = %d, want 200", items[0].Size)
	}
}

func TestManagerListSortsNewestFirst(t *testing.T) {
	dir := makeTrashDir(t, "old.txt", "older.txt", "oldest.txt")
	m := &Manager{dirs: []string{dir}}

	items, err := m.List()
	if err != nil {
		t.Fatalf("List() error = %v, want nil", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].DeletedAt.After(items[i-1].DeletedAt) {
			t.Errorf("items not sorted newest first: %v before %v",
				items[i-1].DeletedAt, items[i].DeletedAt)
		}
	}
}

func TestManagerLookup(t *testing.T) {
	dir := makeTrashDir(t, "a.txt", "b.txt")
	m := &Manager{dirs: []string{dir}}

	items, err := m.Lookup([]string{"a.txt"})
	if err != nil {
		t.Fatalf("Lookup() error = %v, want nil", err)
	}
	if len(items) != 1 || items[0].Name != "a.txt" {
		t.Fatalf("Lookup() = %v, want single a.txt", items)
	}

	if _, err := m.Lookup([]string{"a.txt", "nope.txt"}); err == nil {
		t.Fatal("Lookup() with unknown name should fail")
	}
}
